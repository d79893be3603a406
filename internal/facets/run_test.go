package facets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func smallConfig(t *testing.T, out string, extra string) *Config {
	t.Helper()
	js := fmt.Sprintf(`{"width": 12, "height": 10, "seed": 7, "workers": 2,
		"recipe": {"vertices": 5, "scatter": "skewed", "shape": "messy"}, "out": %q%s}`, out, extra)
	cfg, err := ParseConfig([]byte(js))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunConfigWritesImageAndSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "img", "out.png")
	var buf bytes.Buffer
	if err := RunConfig(smallConfig(t, out, ""), &buf); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("image not written: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[0], `{ spot: "#`) || !strings.HasSuffix(lines[0], "vertices: 5 }") {
		t.Fatalf("unexpected summary:\n%s", buf.String())
	}
	if lines[1] != "" || strings.Count(lines[2], "Point(") != 5 {
		t.Fatalf("unexpected vertex list:\n%s", buf.String())
	}
}

func TestRunConfigSameSeedSameSummary(t *testing.T) {
	dir := t.TempDir()
	var a, b bytes.Buffer
	if err := RunConfig(smallConfig(t, filepath.Join(dir, "a.png"), ""), &a); err != nil {
		t.Fatal(err)
	}
	if err := RunConfig(smallConfig(t, filepath.Join(dir, "b.png"), ""), &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("seeded runs differ:\n%s\nvs\n%s", a.String(), b.String())
	}
	da, _ := os.ReadFile(filepath.Join(dir, "a.png"))
	db, _ := os.ReadFile(filepath.Join(dir, "b.png"))
	if !bytes.Equal(da, db) {
		t.Fatal("seeded runs wrote different images")
	}
}

func TestRunConfigGrayAndRaw(t *testing.T) {
	RAW = true
	defer func() { RAW = false }()
	dir := t.TempDir()
	out := filepath.Join(dir, "gray.tif")
	var buf bytes.Buffer
	if err := RunConfig(smallConfig(t, out, `, "gray": true`), &buf); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{out, filepath.Join(dir, "gray.raw")} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("%s not written: %v", p, err)
		}
	}
}

func TestRunConfigBadOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.xyz")
	var buf bytes.Buffer
	if err := RunConfig(smallConfig(t, out, ""), &buf); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}

func TestRunMissingConfig(t *testing.T) {
	if err := Run(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config")
	}
}
