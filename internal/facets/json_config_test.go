package facets

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != ImageRes || cfg.Height != ImageRes {
		t.Fatalf("default size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Recipe != (Recipe{Vertices: 0, Scatter: Skewed, Shape: Messy}) {
		t.Fatalf("default recipe %+v", cfg.Recipe)
	}
	if cfg.Out != OutFile || cfg.ProbePixels != ProbePixels {
		t.Fatalf("default out=%q probe=%d", cfg.Out, cfg.ProbePixels)
	}
	l, err := cfg.Lighting.Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.Incident != DefaultIncident || l.Light != DefaultLightDir || l.Ambient != Ambient || l.MaxLight != MaxLight {
		t.Fatalf("default lighting %+v", l)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"resolution": 32,
		"height": 10,
		"seed": 5,
		"recipe": {"vertices": 7, "scatter": "none", "shape": "strong"},
		"lighting": {"light": {"x": 1, "y": 0, "z": 1}, "ambient": 20},
		"spot": "#ff0000",
		"background": "#000000",
		"out": "x.bmp"
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.Height != 10 {
		t.Fatalf("size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Recipe != (Recipe{Vertices: 7, Scatter: Regular, Shape: Messy}) {
		t.Fatalf("recipe %+v", cfg.Recipe)
	}
	l, err := cfg.Lighting.Build()
	if err != nil {
		t.Fatal(err)
	}
	if l.Light != (Vector3{1, 0, 1}) || l.Ambient != 20 || l.MaxLight != MaxLight {
		t.Fatalf("lighting %+v", l)
	}
	p := cfg.palette(rand.New(rand.NewSource(1)))
	if p.Spot != (RGB{255, 0, 0}) || p.Background != (RGB{}) {
		t.Fatalf("palette %+v", p)
	}
	if p.Ambient == (RGB{}) {
		t.Fatal("unset ambient color should be random")
	}
}

func TestParseConfigErrors(t *testing.T) {
	for name, js := range map[string]string{
		"bad json":       `{`,
		"bad randomness": `{"recipe": {"scatter": "chaotic"}}`,
		"bad lighting":   `{"lighting": {"ambient": 200, "maxLight": 100}}`,
		"zero light":     `{"lighting": {"light": {"x": 0, "y": 0, "z": 0}}}`,
		"bad color":      `{"spot": "red"}`,
		"many vertices":  `{"recipe": {"vertices": 1000}}`,
	} {
		if _, err := ParseConfig([]byte(js)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestConfigRandomVertices(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		r := cfg.recipe(rng)
		if r.Vertices < 5 || r.Vertices > 10 {
			t.Fatalf("random vertex count %d out of [5,10]", r.Vertices)
		}
	}
	cfg.Recipe.Vertices = 9
	if r := cfg.recipe(rng); r.Vertices != 9 {
		t.Fatalf("explicit vertex count overridden: %d", r.Vertices)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"resolution": 8, "recipe": {"vertices": 4}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 8 || cfg.Recipe.Vertices != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSceneConfigsParse(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("..", "..", "scenes", "*.json"))
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if _, err := loadConfig(m); err != nil {
			t.Errorf("%s: %v", m, err)
		}
	}
}
