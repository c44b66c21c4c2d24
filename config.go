package rayvox

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	SceneAnalytic = "analytic"
	SceneBuffer   = "buffer"

	WorldRandom = "random"
	WorldShapes = "shapes"
	WorldVox    = "vox"

	HitModeHold = "hold"
	HitModeStop = "stop"
)

type CameraConfig struct {
	Position       [3]float32 `yaml:"position"`
	Rotation       [3]float32 `yaml:"rotation"`
	Direction      [3]float32 `yaml:"direction"`
	RenderDistance int        `yaml:"render_distance"`
}

type WorldConfig struct {
	Kind   string `yaml:"kind"`
	Seed   int64  `yaml:"seed"`
	Size   int    `yaml:"size"`
	Extent int    `yaml:"extent"`
	OneIn  int    `yaml:"one_in"`
	Path   string `yaml:"path"` // .vox model, kind vox only
}

type AnalyticConfig struct {
	MaxSteps int    `yaml:"max_steps"`
	HitMode  string `yaml:"hit_mode"`
}

type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Workers   int    `yaml:"workers"` // 0 means one per CPU
	TileSize  int    `yaml:"tile_size"`
	Debug     bool   `yaml:"debug"`
	LogPrefix string `yaml:"log_prefix"`
	Scene     string `yaml:"scene"`

	Camera   CameraConfig   `yaml:"camera"`
	World    WorldConfig    `yaml:"world"`
	Analytic AnalyticConfig `yaml:"analytic"`
}

func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		TileSize:  16,
		LogPrefix: "rayvox",
		Scene:     SceneBuffer,
		Camera: CameraConfig{
			Position:       [3]float32{0, 0, -10},
			Direction:      [3]float32{0, 0, 0.8},
			RenderDistance: 64,
		},
		World: WorldConfig{
			Kind:   WorldRandom,
			Seed:   1,
			Size:   256,
			Extent: 250,
			OneIn:  19,
		},
		Analytic: AnalyticConfig{
			MaxSteps: 640,
			HitMode:  HitModeHold,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %d", ErrInvalidConfig, c.TileSize)
	}
	if c.Scene != SceneAnalytic && c.Scene != SceneBuffer {
		return fmt.Errorf("%w: unknown scene %q", ErrInvalidConfig, c.Scene)
	}
	if c.Camera.RenderDistance <= 0 {
		return fmt.Errorf("%w: render_distance %d", ErrInvalidConfig, c.Camera.RenderDistance)
	}
	switch c.World.Kind {
	case WorldRandom, WorldShapes:
	case WorldVox:
		if c.World.Path == "" {
			return fmt.Errorf("%w: world kind vox needs a path", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown world kind %q", ErrInvalidConfig, c.World.Kind)
	}
	if c.World.Size <= 0 {
		return fmt.Errorf("%w: world size %d", ErrInvalidConfig, c.World.Size)
	}
	if c.World.Extent < 0 || c.World.Extent > c.World.Size {
		return fmt.Errorf("%w: world extent %d outside [0,%d]", ErrInvalidConfig, c.World.Extent, c.World.Size)
	}
	if c.World.OneIn <= 0 {
		return fmt.Errorf("%w: one_in %d", ErrInvalidConfig, c.World.OneIn)
	}
	if c.Analytic.MaxSteps < 0 {
		return fmt.Errorf("%w: analytic max_steps %d", ErrInvalidConfig, c.Analytic.MaxSteps)
	}
	if c.Analytic.HitMode != HitModeHold && c.Analytic.HitMode != HitModeStop {
		return fmt.Errorf("%w: unknown hit_mode %q", ErrInvalidConfig, c.Analytic.HitMode)
	}
	return nil
}
