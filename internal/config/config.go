// Package config handles exercise configuration loading and management.
package config

// Config holds all exercise settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Plot     PlotConfig     `yaml:"plot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// TerrainConfig holds heightmap and mesh settings.
type TerrainConfig struct {
	Heightmap   string `yaml:"heightmap"`     // Path to heightmap image; empty means synthetic
	GridSize    int    `yaml:"grid_size"`     // Side length of the synthetic grid
	MaxGridSize int    `yaml:"max_grid_size"` // Loaded images are downscaled to at most this side
	Seed        int64  `yaml:"seed"`          // Noise seed for the synthetic fallback
	Indexed     bool   `yaml:"indexed"`       // Use the indexed mesh variant
	ShaderDir   string `yaml:"shader_dir"`    // Load terrain shaders from files; empty means inline
}

// PlotConfig holds 2D plotter settings.
type PlotConfig struct {
	Samples int `yaml:"samples"` // Vertices sampled per frame
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
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    false,
		},
		Terrain: TerrainConfig{
			Heightmap:   "",
			GridSize:    64,
			MaxGridSize: 256,
			Seed:        1337,
			Indexed:     false,
			ShaderDir:   "",
		},
		Plot: PlotConfig{
			Samples: 1024,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
