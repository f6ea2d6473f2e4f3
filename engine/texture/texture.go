// Package texture decodes image files into RGBA staging data for GPU
// upload. A texture is optional decoration for the viewer: load failures
// are recoverable and the renderer falls back to untextured shading.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// StagingData holds decoded RGBA pixel data pending GPU upload.
type StagingData struct {
	// Pixels is the raw pixel data in RGBA format, 4 bytes per pixel,
	// row-major with no row padding.
	Pixels []byte
	// Width is the texture width in pixels.
	Width uint32
	// Height is the texture height in pixels.
	Height uint32
}

// Load opens and decodes an image file (PNG or JPEG) into staging data.
//
// Parameters:
//   - path: file path of the image
//
// Returns:
//   - *StagingData: decoded RGBA pixels and dimensions
//   - error: an error if the file cannot be opened or decoded
func Load(path string) (*StagingData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}
	return s, nil
}

// Decode decodes image data from a reader into tightly packed RGBA staging
// data. Non-RGBA source formats are converted.
//
// Parameters:
//   - r: reader supplying PNG or JPEG data
//
// Returns:
//   - *StagingData: decoded RGBA pixels and dimensions
//   - error: an error if decoding fails
func Decode(r io.Reader) (*StagingData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &StagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}
