package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagHeightmap  = flag.String("heightmap", "", "Path to heightmap image")
	flagGridSize   = flag.Int("grid", 0, "Synthetic heightmap grid size")
	flagSeed       = flag.Int64("seed", 0, "Noise seed for the synthetic heightmap")
	flagIndexed    = flag.Bool("indexed", false, "Use the indexed terrain mesh variant")
	flagShaderDir  = flag.String("shaders", "", "Load terrain shaders from this directory")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory and continue")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was passed.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Graphics.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagHeightmap != "" {
		cfg.Terrain.Heightmap = *flagHeightmap
	}
	if *flagGridSize > 0 {
		cfg.Terrain.GridSize = *flagGridSize
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagIndexed {
		cfg.Terrain.Indexed = true
	}
	if *flagShaderDir != "" {
		cfg.Terrain.ShaderDir = *flagShaderDir
	}
}
