package facets

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RenderConfig is the immutable per-image setup of the sampler.
type RenderConfig struct {
	Width   int
	Height  int
	Workers int // <= 0 means runtime.NumCPU()
}

func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

func (c RenderConfig) workers() int {
	w := c.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	return imax(1, w)
}

// sceneCoord rescales pixel index v of n into [CoordMin, CoordMax).
func sceneCoord(v, n int) Real {
	return Real(v)/Real(n)*(CoordMax-CoordMin) + CoordMin
}

// PixelToScene maps a pixel to its (x, y) ray column. Rows grow downward,
// scene y grows upward.
func (c RenderConfig) PixelToScene(px, py int) (x, y Real) {
	return sceneCoord(px, c.Width), -sceneCoord(py, c.Height)
}

// Sample is one pixel result. Misses carry no value and take the background.
type Sample struct {
	Value uint8
	Hit   bool
}

// Frame is the rendered sample buffer, row-major.
type Frame struct {
	Width, Height int
	Samples       []Sample
}

func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Samples: make([]Sample, w*h)}
}

func (f *Frame) idx(px, py int) int { return py*f.Width + px }

func (f *Frame) At(px, py int) Sample { return f.Samples[f.idx(px, py)] }

// Hits counts pixels that struck a face.
func (f *Frame) Hits() int {
	n := 0
	for _, s := range f.Samples {
		if s.Hit {
			n++
		}
	}
	return n
}

// March steps z from CoordMax down to CoordMin along (x, y) and returns the
// first face hit together with its depth.
func March(f FaceFinder, x, y Real) (Face, uint8, int, bool) {
	for z := CoordMax; z >= CoordMin; z-- {
		if face, v, ok := f.FirstMatchingFace(Vector3{x, y, Real(z)}); ok {
			return face, v, z, true
		}
	}
	return Face{}, 0, 0, false
}

func renderPixel(f FaceFinder, c RenderConfig, px, py int) (s Sample, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = Sample{}
			err = errors.Errorf("pixel (%d, %d): %v", px, py, r)
			if Debug {
				logMarch(Recover, px, py, 0, 0)
			}
		}
	}()
	x, y := c.PixelToScene(px, py)
	if cr, ok := f.(columnRejecter); ok && cr.RejectsColumn(x, y) {
		if Debug {
			logMarch(Reject, px, py, 0, 0)
		}
		return Sample{}, nil
	}
	_, v, z, ok := March(f, x, y)
	if Debug {
		if ok {
			logMarch(Hit, px, py, z, v)
		} else {
			logMarch(Miss, px, py, 0, 0)
		}
	}
	return Sample{Value: v, Hit: ok}, nil
}

// Render evaluates every pixel on a bounded pool of workers. Each pixel is
// written exactly once into its own slot. A pixel whose evaluation panics is
// left as a miss; the frame is still complete and the first such failure is
// returned alongside it.
func Render(f FaceFinder, c RenderConfig) (*Frame, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	frame := NewFrame(c.Width, c.Height)
	workers := c.workers()

	total := int64(c.Width) * int64(c.Height)
	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = total / 100 // ~1%
	}
	var counter int64

	var g errgroup.Group
	g.SetLimit(workers)
	for py := 0; py < c.Height; py++ {
		row := py
		g.Go(func() error {
			var rowErr error
			for px := 0; px < c.Width; px++ {
				s, err := renderPixel(f, c, px, row)
				frame.Samples[frame.idx(px, row)] = s
				if err != nil && rowErr == nil {
					rowErr = err
				}
				done := atomic.AddInt64(&counter, 1)
				if Progress && done%nextPrint == 0 {
					fmt.Printf("[RENDER] %.2f%%\n", Real(done)*100/Real(total))
				}
			}
			return rowErr
		})
	}
	if err := g.Wait(); err != nil {
		return frame, errors.Wrap(err, "render")
	}
	DebugLog("Rendered %dx%d on %d workers, hits=%d", c.Width, c.Height, workers, frame.Hits())
	return frame, nil
}
