package config

import (
	"flag"

	"meshview/common"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagMesh    = flag.String("mesh", "", "Path to the OBJ mesh to view")
	flagTexture = flag.String("texture", "", "Path to the base color texture (PNG or JPEG)")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagNoVSync = flag.Bool("no-vsync", false, "Present frames immediately instead of waiting for vertical blank")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	cfg.Viewer.MeshPath = common.Coalesce(*flagMesh, cfg.Viewer.MeshPath)
	cfg.Viewer.TexturePath = common.Coalesce(*flagTexture, cfg.Viewer.TexturePath)
	cfg.Graphics.Width = common.Coalesce(*flagWidth, cfg.Graphics.Width)
	cfg.Graphics.Height = common.Coalesce(*flagHeight, cfg.Graphics.Height)
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
}
