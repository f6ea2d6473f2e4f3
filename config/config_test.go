package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.FOVDegrees != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Viewer.FOVDegrees)
	}
	if cfg.Viewer.MeshPath != "" {
		t.Errorf("expected empty mesh path, got %s", cfg.Viewer.MeshPath)
	}

	if cfg.Lighting.Intensity != 1.0 {
		t.Errorf("expected intensity 1.0, got %f", cfg.Lighting.Intensity)
	}
	if cfg.Lighting.SpecularExponent != 32 {
		t.Errorf("expected specular exponent 32, got %f", cfg.Lighting.SpecularExponent)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshview.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false

viewer:
  mesh_path: "models/bunny.obj"
  texture_path: "models/bunny.png"
  fov_degrees: 60

lighting:
  intensity: 0.9
  specular_exponent: 64

logging:
  level: "debug"
  log_file: "meshview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Viewer.MeshPath != "models/bunny.obj" {
		t.Errorf("expected mesh path models/bunny.obj, got %s", cfg.Viewer.MeshPath)
	}
	if cfg.Viewer.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Viewer.FOVDegrees)
	}
	if cfg.Lighting.Intensity != 0.9 {
		t.Errorf("expected intensity 0.9, got %f", cfg.Lighting.Intensity)
	}
	// Values absent from the file keep their defaults.
	if cfg.Lighting.Ambient != 0.15 {
		t.Errorf("expected default ambient 0.15, got %f", cfg.Lighting.Ambient)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/meshview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "mesh and texture flags",
			setup: func() { *flagMesh = "a.obj"; *flagTexture = "a.png" },
			verify: func(cfg *Config) {
				if cfg.Viewer.MeshPath != "a.obj" {
					t.Errorf("expected mesh path a.obj, got %s", cfg.Viewer.MeshPath)
				}
				if cfg.Viewer.TexturePath != "a.png" {
					t.Errorf("expected texture path a.png, got %s", cfg.Viewer.TexturePath)
				}
			},
			teardown: func() { *flagMesh = ""; *flagTexture = "" },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
		{
			name:  "no-vsync flag",
			setup: func() { *flagNoVSync = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.VSync {
					t.Error("expected vsync to be false with no-vsync flag")
				}
			},
			teardown: func() { *flagNoVSync = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "meshview.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}
