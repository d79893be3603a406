package facets

import "fmt"

// Face identifies the vertex triple (I, J, K), I < J < K, of a surface.
type Face struct {
	I, J, K int
}

func (f Face) String() string { return fmt.Sprintf("Face(%d, %d, %d)", f.I, f.J, f.K) }

// FaceFinder answers point-on-surface queries. Implementations must be safe
// for concurrent use.
type FaceFinder interface {
	// FirstMatchingFace returns the first face p lies on and its lit intensity.
	FirstMatchingFace(p Vector3) (Face, uint8, bool)
}

// BruteForce scans every vertex triple in ascending (i, j, k) order.
// It is read-only after construction.
type BruteForce struct {
	surf    *Surface
	light   Lighting
	useBBox bool
	pad     Real
}

// NewBruteForce builds the exhaustive face scanner for s. The bounding box
// pre-check follows the package level UseBBox flag.
func NewBruteForce(s *Surface, l Lighting) *BruteForce {
	DebugLogOnce("Face finder: brute force over C(n,3) triples, bbox pre-check=%v", UseBBox)
	return &BruteForce{surf: s, light: l, useBBox: UseBBox, pad: PlaneTolerance + bboxSlack}
}

// WithBBox returns a copy of f with the bounding box pre-check toggled.
func (f *BruteForce) WithBBox(on bool) *BruteForce {
	cp := *f
	cp.useBBox = on
	return &cp
}

func (f *BruteForce) Surface() *Surface { return f.surf }
func (f *BruteForce) Lighting() Lighting { return f.light }

// FirstMatchingFace implements FaceFinder.
func (f *BruteForce) FirstMatchingFace(p Vector3) (Face, uint8, bool) {
	if f.useBBox && !f.surf.box.Contains(p, f.pad) {
		return Face{}, 0, false
	}
	vs := f.surf.vecs
	n := len(vs)
	for i := 0; i < n; i++ {
		a := vs[i]
		for j := i + 1; j < n; j++ {
			b := vs[j]
			for k := j + 1; k < n; k++ {
				c := vs[k]
				if isInTriangle(p, a, b, c) {
					return Face{i, j, k}, f.light.Intensity(a, b, c), true
				}
			}
		}
	}
	return Face{}, 0, false
}

// Query is FirstMatchingFace without the face id.
func (f *BruteForce) Query(p Vector3) (uint8, bool) {
	_, v, ok := f.FirstMatchingFace(p)
	return v, ok
}
