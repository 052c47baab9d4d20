package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir = ".bintree"

	// Node marker geometry for the SVG renderer.
	DefaultRadius    = 15.0
	DefaultTop       = 50.0
	DefaultLevelGap  = 50.0
	DefaultSVGWidth  = 800
	DefaultSVGHeight = 400

	// Terminal canvas size in character cells.
	DefaultCanvasWidth  = 64
	DefaultCanvasHeight = 16
	DefaultCanvasRadius = 2.0
	DefaultCanvasTop    = 4.0
	DefaultCanvasGap    = 12.0

	EnvPrefix = "BINTREE"
)

type Config struct {
	Strict  bool         `yaml:"strict"`
	DataDir string       `yaml:"data_dir"`
	Theme   string       `yaml:"theme"`
	Canvas  CanvasConfig `yaml:"canvas"`
	SVG     SVGConfig    `yaml:"svg"`
}

type CanvasConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Top      float64 `yaml:"top"`
	LevelGap float64 `yaml:"level_gap"`
}

type SVGConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Top      float64 `yaml:"top"`
	LevelGap float64 `yaml:"level_gap"`
	Fill     string  `yaml:"fill"`
	Stroke   string  `yaml:"stroke"`
	Line     string  `yaml:"line"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Theme:   "ocean",
		Canvas: CanvasConfig{
			Width:    DefaultCanvasWidth,
			Height:   DefaultCanvasHeight,
			Radius:   DefaultCanvasRadius,
			Top:      DefaultCanvasTop,
			LevelGap: DefaultCanvasGap,
		},
		SVG: SVGConfig{
			Width:    DefaultSVGWidth,
			Height:   DefaultSVGHeight,
			Radius:   DefaultRadius,
			Top:      DefaultTop,
			LevelGap: DefaultLevelGap,
			Fill:     "lightblue",
			Stroke:   "darkblue",
			Line:     "black",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects geometry that cannot be drawn.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.Newf("config: canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.SVG.Width <= 0 || c.SVG.Height <= 0 {
		return errors.Newf("config: svg size must be positive, got %dx%d", c.SVG.Width, c.SVG.Height)
	}
	if c.Canvas.Radius < 0 || c.SVG.Radius < 0 {
		return errors.New("config: radius must not be negative")
	}
	return nil
}

// ApplyEnv overlays BINTREE_* environment variables, e.g. BINTREE_STRICT,
// BINTREE_DATA_DIR or BINTREE_SVG_WIDTH.
func (c *Config) ApplyEnv() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.IsSet("strict") {
		c.Strict = v.GetBool("strict")
	}
	if v.IsSet("data_dir") {
		c.DataDir = v.GetString("data_dir")
	}
	if v.IsSet("theme") {
		c.Theme = v.GetString("theme")
	}
	if v.IsSet("canvas.width") {
		c.Canvas.Width = v.GetInt("canvas.width")
	}
	if v.IsSet("canvas.height") {
		c.Canvas.Height = v.GetInt("canvas.height")
	}
	if v.IsSet("svg.width") {
		c.SVG.Width = v.GetInt("svg.width")
	}
	if v.IsSet("svg.height") {
		c.SVG.Height = v.GetInt("svg.height")
	}
	return c.Validate()
}
