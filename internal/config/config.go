package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/solar"
)

const (
	DefaultFOV      = 75.0
	DefaultDistance = 30.0
	DefaultFPS      = 60
	DefaultTheme    = "light"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Seed   int64        `yaml:"seed"`
	FPS    int          `yaml:"fps"`
	Theme  string       `yaml:"theme"`
	Scene  SceneConfig  `yaml:"scene"`
	Camera CameraConfig `yaml:"camera"`
	Bodies []BodyConfig `yaml:"bodies"`
}

type SceneConfig struct {
	StarCount     int     `yaml:"star_count"`
	StarSpread    float64 `yaml:"star_spread"`
	OrbitSegments int     `yaml:"orbit_segments"`
}

type CameraConfig struct {
	FOV      float64 `yaml:"fov"`
	Distance float64 `yaml:"distance"`
	Damping  float64 `yaml:"damping"`
}

// BodyConfig is the file form of solar.BodyConfig; colours are "#rrggbb"
// or "0xrrggbb".
type BodyConfig struct {
	Name          string  `yaml:"name"`
	Radius        float64 `yaml:"radius"`
	Distance      float64 `yaml:"distance"`
	Color         string  `yaml:"color"`
	Speed         float64 `yaml:"speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	HasRing       bool    `yaml:"has_ring,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:   DefaultFPS,
		Theme: DefaultTheme,
		Scene: SceneConfig{
			StarCount:     scene.DefaultStarCount,
			StarSpread:    scene.DefaultStarSpread,
			OrbitSegments: scene.DefaultOrbitSegments,
		},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Distance: DefaultDistance,
			Damping:  scene.DefaultDamping,
		},
		Bodies: FromBodies(solar.DefaultBodies()),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the body table and the numeric settings.
func (c *Config) Validate() error {
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalidConfig)
	}
	if c.Bodies[0].Distance != 0 || c.Bodies[0].Speed != 0 {
		return fmt.Errorf("%w: first body %q must sit at the origin with speed 0", ErrInvalidConfig, c.Bodies[0].Name)
	}
	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		key := strings.ToLower(b.Name)
		if key == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalidConfig, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalidConfig, b.Name)
		}
		seen[key] = true
		if b.Radius <= 0 {
			return fmt.Errorf("%w: body %q radius must be positive", ErrInvalidConfig, b.Name)
		}
		if i > 0 && b.Distance <= 0 {
			return fmt.Errorf("%w: body %q distance must be positive", ErrInvalidConfig, b.Name)
		}
		if _, err := ParseColor(b.Color); err != nil {
			return fmt.Errorf("%w: body %q: %v", ErrInvalidConfig, b.Name, err)
		}
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: fov must be in (0, 180), got %f", ErrInvalidConfig, c.Camera.FOV)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("%w: camera distance must be positive", ErrInvalidConfig)
	}
	return nil
}

// BodyConfigs converts the table to registry configs, order preserved.
func (c *Config) BodyConfigs() ([]solar.BodyConfig, error) {
	out := make([]solar.BodyConfig, len(c.Bodies))
	for i, b := range c.Bodies {
		col, err := ParseColor(b.Color)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", b.Name, err)
		}
		out[i] = solar.BodyConfig{
			Name:          b.Name,
			Radius:        b.Radius,
			Distance:      b.Distance,
			Color:         col,
			Speed:         b.Speed,
			RotationSpeed: b.RotationSpeed,
			HasRing:       b.HasRing,
		}
	}
	return out, nil
}

func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		StarCount:     c.Scene.StarCount,
		StarSpread:    c.Scene.StarSpread,
		OrbitSegments: c.Scene.OrbitSegments,
	}
}

// FromBodies is the inverse of BodyConfigs.
func FromBodies(bodies []solar.BodyConfig) []BodyConfig {
	out := make([]BodyConfig, len(bodies))
	for i, b := range bodies {
		out[i] = BodyConfig{
			Name:          b.Name,
			Radius:        b.Radius,
			Distance:      b.Distance,
			Color:         b.Color.Hex(),
			Speed:         b.Speed,
			RotationSpeed: b.RotationSpeed,
			HasRing:       b.HasRing,
		}
	}
	return out
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or bare "rrggbb".
func ParseColor(s string) (solar.Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) != 6 {
		return 0, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad colour %q", s)
	}
	return solar.Color(v), nil
}
