// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Lighting LightingConfig `yaml:"lighting"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	VSync            bool `yaml:"vsync"`
	SoftwareRenderer bool `yaml:"software_renderer"`
}

// ViewerConfig holds the assets and view settings.
type ViewerConfig struct {
	MeshPath    string  `yaml:"mesh_path"`
	TexturePath string  `yaml:"texture_path"`
	FOVDegrees  float32 `yaml:"fov_degrees"`
	// Fixed mesh rotation in degrees, for meshes authored with a
	// different up axis.
	RotationXDegrees float32 `yaml:"rotation_x_degrees"`
	RotationYDegrees float32 `yaml:"rotation_y_degrees"`
	RotationZDegrees float32 `yaml:"rotation_z_degrees"`
}

// LightingConfig holds the Blinn-Phong lighting parameters.
type LightingConfig struct {
	PositionX        float32 `yaml:"position_x"`
	PositionY        float32 `yaml:"position_y"`
	PositionZ        float32 `yaml:"position_z"`
	Intensity        float32 `yaml:"intensity"`
	Ambient          float32 `yaml:"ambient"`
	Diffuse          float32 `yaml:"diffuse"`
	Specular         float32 `yaml:"specular"`
	SpecularExponent float32 `yaml:"specular_exponent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:            800,
			Height:           600,
			VSync:            true,
			SoftwareRenderer: false,
		},
		Viewer: ViewerConfig{
			MeshPath:   "",
			FOVDegrees: 45,
		},
		Lighting: LightingConfig{
			PositionX:        2,
			PositionY:        4,
			PositionZ:        3,
			Intensity:        1.0,
			Ambient:          0.15,
			Diffuse:          0.85,
			Specular:         0.4,
			SpecularExponent: 32,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
