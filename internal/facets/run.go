package facets

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// WriteSummary prints the chosen colors, vertex count and vertex list.
func WriteSummary(w io.Writer, p Palette, s *Surface) {
	fmt.Fprintf(w, "{ spot: %q, ambient: %q, vertices: %d }\n", p.Spot.Hex(), p.Ambient.Hex(), s.Len())
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.String())
}

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(cfg, os.Stdout)
}

// RunConfig generates, renders and saves one image described by cfg.
func RunConfig(cfg *Config, out io.Writer) error {
	rng := cfg.rng()
	pal := cfg.palette(rng)
	lighting, err := cfg.Lighting.Build()
	if err != nil {
		return errors.Wrap(err, "lighting")
	}

	surf, err := NewSurface(cfg.recipe(rng), rng)
	if err != nil {
		return err
	}
	WriteSummary(out, pal, surf)

	rc := cfg.RenderConfig()
	finder := NewBruteForce(surf, lighting)
	if Debug {
		DebugLog("Faces: %d, worst case face tests: %d", surf.FaceCount(), estimateWork(surf, rc))
		DebugLog("Estimated coverage: %.4f", estimateCoverage(finder, rc, cfg.ProbePixels, rng.Int63()))
	}

	start := time.Now()
	frame, err := Render(finder, rc)
	if err != nil {
		if frame == nil {
			return err
		}
		// the frame is complete, failed pixels are left as background
		fmt.Fprintf(out, "Warning: %v\n", err)
	}
	DebugLog("Render: %dx%d, time: %s", rc.Width, rc.Height, time.Since(start))

	if Debug {
		marchStats()
	}

	var img image.Image
	if Gray || cfg.Gray {
		img = frame.GrayImage(pal.Background.R)
	} else {
		img = frame.ColorImage(pal, lighting.Ambient)
	}
	if err := SaveImage(img, cfg.Out); err != nil {
		return err
	}
	DebugLog("Saved image: %s", cfg.Out)

	if RAW {
		raw := strings.TrimSuffix(cfg.Out, filepath.Ext(cfg.Out)) + ".raw"
		if err := frame.SaveRaw(raw); err != nil {
			return errors.Wrapf(err, "save raw %s", raw)
		}
		DebugLog("Saved raw frame: %s", raw)
	}
	return nil
}
