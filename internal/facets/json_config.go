package facets

import (
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
)

type LightingCfg struct {
	Incident *Vector3 `json:"incident,omitempty"`
	Light    *Vector3 `json:"light,omitempty"`
	Ambient  *uint8   `json:"ambient,omitempty"`
	MaxLight *uint8   `json:"maxLight,omitempty"`
}

type Config struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Resolution  int         `json:"resolution"` // square size used when width or height is unset
	Workers     int         `json:"workers,omitempty"`
	Seed        int64       `json:"seed,omitempty"` // 0 means time based
	Recipe      Recipe      `json:"recipe"`         // vertices == 0 picks a random count in [5, 10]
	Lighting    LightingCfg `json:"lighting"`
	Background  *RGB        `json:"background,omitempty"`
	Spot        *RGB        `json:"spot,omitempty"`         // random hue when unset
	AmbientRGB  *RGB        `json:"ambientColor,omitempty"` // random hue when unset
	Gray        bool        `json:"gray,omitempty"`
	Out         string      `json:"out"`
	ProbePixels int         `json:"probePixels,omitempty"`
}

// DefaultConfig mirrors the classic render: 675x675, skewed scatter, messy
// shape and a random vertex count.
func DefaultConfig() Config {
	return Config{
		Width:       ImageRes,
		Height:      ImageRes,
		Recipe:      Recipe{Vertices: 0, Scatter: Skewed, Shape: Messy},
		Out:         OutFile,
		ProbePixels: ProbePixels,
	}
}

// Build resolves the lighting block against the defaults.
func (lc LightingCfg) Build() (Lighting, error) {
	incident, light := DefaultIncident, DefaultLightDir
	ambient, maxLight := uint8(Ambient), uint8(MaxLight)
	if lc.Incident != nil {
		incident = *lc.Incident
	}
	if lc.Light != nil {
		light = *lc.Light
	}
	if lc.Ambient != nil {
		ambient = *lc.Ambient
	}
	if lc.MaxLight != nil {
		maxLight = *lc.MaxLight
	}
	return NewLighting(incident, light, ambient, maxLight)
}

// RenderConfig returns the sampler setup.
func (c *Config) RenderConfig() RenderConfig {
	return RenderConfig{Width: c.Width, Height: c.Height, Workers: c.Workers}
}

// rng returns the run's random source, seeding from the clock when Seed is 0.
func (c *Config) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// palette fills unset colors from rng: spot first, then ambient.
func (c *Config) palette(rng *rand.Rand) Palette {
	p := Palette{Background: GrayRGB(Background)}
	if c.Spot != nil {
		p.Spot = *c.Spot
	} else {
		p.Spot = RandomRGB(rng)
	}
	if c.AmbientRGB != nil {
		p.Ambient = *c.AmbientRGB
	} else {
		p.Ambient = RandomRGB(rng)
	}
	if c.Background != nil {
		p.Background = *c.Background
	}
	return p
}

// recipe resolves a zero vertex count to a random one in [5, 10].
func (c *Config) recipe(rng *rand.Rand) Recipe {
	r := c.Recipe
	if r.Vertices == 0 {
		r.Vertices = rng.Intn(6) + 5
	}
	return r
}

func (c *Config) applyDefaults() {
	if c.Resolution <= 0 {
		c.Resolution = ImageRes
	}
	if c.Width <= 0 {
		c.Width = c.Resolution
	}
	if c.Height <= 0 {
		c.Height = c.Resolution
	}
	if c.Out == "" {
		c.Out = OutFile
	}
	if c.ProbePixels <= 0 {
		c.ProbePixels = ProbePixels
	}
}

func (c *Config) validate() error {
	if c.Recipe.Vertices < 0 || c.Recipe.Vertices > MaxVertices {
		return errors.Errorf("recipe vertices must be in [0, %d], got %d", MaxVertices, c.Recipe.Vertices)
	}
	if _, err := c.Lighting.Build(); err != nil {
		return errors.Wrap(err, "lighting")
	}
	return c.RenderConfig().Validate()
}

// ParseConfig decodes a JSON config, fills defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 0, 0
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), recipe=%+v, seed=%d, out=%s", path, cfg.Width, cfg.Height, cfg.Recipe, cfg.Seed, cfg.Out)
	return cfg, nil
}
