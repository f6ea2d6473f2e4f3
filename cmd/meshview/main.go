package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"meshview/common"
	"meshview/config"
	"meshview/engine/mesh"
	"meshview/engine/renderer"
	"meshview/engine/texture"
	"meshview/engine/window"
	"meshview/logger"

	"go.uber.org/zap"
)

const degToRad = math.Pi / 180.0

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "meshview: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	if cfg.Viewer.MeshPath == "" {
		log.Fatal("no mesh given, pass -mesh <path.obj> or set viewer.mesh_path in meshview.yaml")
	}

	m, err := mesh.LoadOBJ(cfg.Viewer.MeshPath)
	if err != nil {
		log.Fatal("failed to load mesh", zap.String("path", cfg.Viewer.MeshPath), zap.Error(err))
	}
	log.Info("mesh loaded",
		zap.String("path", cfg.Viewer.MeshPath),
		zap.Int("triangles", m.TriangleCount()),
	)

	var stagingData *texture.StagingData
	if cfg.Viewer.TexturePath != "" {
		stagingData, err = texture.Load(cfg.Viewer.TexturePath)
		if err != nil {
			log.Warn("failed to load texture, textured mode will use per-vertex shading",
				zap.String("path", cfg.Viewer.TexturePath),
				zap.Error(err),
			)
			stagingData = nil
		}
	}

	win, err := window.NewWindow(
		window.WithTitle("meshview - "+filepath.Base(cfg.Viewer.MeshPath)),
		window.WithWidth(cfg.Graphics.Width),
		window.WithHeight(cfg.Graphics.Height),
	)
	if err != nil {
		log.Fatal("failed to create window", zap.Error(err))
	}
	defer win.Close()

	presentMode := renderer.PresentModeVSync
	if !cfg.Graphics.VSync {
		presentMode = renderer.PresentModeUncapped
	}

	r, err := renderer.NewRenderer(m,
		renderer.WithSurfaceDescriptor(win.SurfaceDescriptor()),
		renderer.WithSize(win.Width(), win.Height()),
		renderer.WithTexture(stagingData),
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(cfg.Graphics.SoftwareRenderer),
		renderer.WithLogger(log),
		renderer.WithFieldOfView(cfg.Viewer.FOVDegrees*degToRad),
		renderer.WithMeshRotation(
			cfg.Viewer.RotationXDegrees*degToRad,
			cfg.Viewer.RotationYDegrees*degToRad,
			cfg.Viewer.RotationZDegrees*degToRad,
		),
		renderer.WithLightPosition(cfg.Lighting.PositionX, cfg.Lighting.PositionY, cfg.Lighting.PositionZ),
		renderer.WithLightParams(cfg.Lighting.Intensity, cfg.Lighting.Ambient, cfg.Lighting.Diffuse, cfg.Lighting.Specular),
		renderer.WithSpecularExponent(cfg.Lighting.SpecularExponent),
	)
	if err != nil {
		log.Fatal("failed to create renderer", zap.Error(err))
	}

	win.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
	})

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.Key1:
			r.SetMode(renderer.ModeWireframe)
		case common.Key2:
			r.SetMode(renderer.ModeFlat)
		case common.Key3:
			r.SetMode(renderer.ModePerVertex)
		case common.Key4:
			r.SetMode(renderer.ModeTextured)
		case common.KeySpace:
			r.SetAnimating(!r.Animating())
		case common.KeyP:
			r.SetPerspective(!r.Perspective())
		}
	})

	win.SetUpdateCallback(r.Frame)

	log.Info("starting render loop",
		zap.Int("width", win.Width()),
		zap.Int("height", win.Height()),
		zap.Bool("vsync", cfg.Graphics.VSync),
		zap.String("mode", r.Mode().String()),
	)
	win.ProcessMessages()
}
