package facets

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

var goldenRatio = (1 + math.Sqrt(5)) / 2

// Recipe describes how to generate a Surface.
type Recipe struct {
	Vertices int        `json:"vertices"`
	Scatter  Randomness `json:"scatter"` // per-vertex position jitter
	Shape    Randomness `json:"shape"`   // per-vertex radius jitter
}

// DefaultRecipe is a jitter-free tetrahedron-like surface.
func DefaultRecipe() Recipe {
	return Recipe{Vertices: 4, Scatter: Regular, Shape: Regular}
}

func (r Recipe) Validate() error {
	if r.Vertices < 1 || r.Vertices > MaxVertices {
		return errors.Errorf("vertices must be in [1, %d], got %d", MaxVertices, r.Vertices)
	}
	if !r.Scatter.valid() {
		return errors.Errorf("invalid scatter randomness %d", r.Scatter)
	}
	if !r.Shape.valid() {
		return errors.Errorf("invalid shape randomness %d", r.Shape)
	}
	return nil
}

// Surface is the immutable point cloud whose vertex triples are the faces.
type Surface struct {
	vertices []Point3
	vecs     []Vector3 // widened vertices, same order
	box      BoundingBox
}

// NewSurface generates a surface from r. rng is only consulted by non-regular
// tiers and may be nil when both tiers are Regular.
func NewSurface(r Recipe, rng *rand.Rand) (*Surface, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if rng == nil && (r.Scatter != Regular || r.Shape != Regular) {
		return nil, errors.New("random recipe needs a random source")
	}
	pts := make([]Point3, r.Vertices)
	for i := range pts {
		radius := Radius + Real(r.Shape.Jitter(rng))
		jitter := NewPoint3(r.Scatter.Jitter(rng), r.Scatter.Jitter(rng), r.Scatter.Jitter(rng))
		pts[i] = latticePoint(i, r.Vertices, radius).Add(jitter)
	}
	s := newSurface(pts)
	DebugLog("Created surface recipe=%+v, vertices=%d, faces=%d, box=%+v", r, len(pts), s.FaceCount(), s.box)
	return s, nil
}

// NewSurfaceFromPoints wraps an explicit vertex list. The slice is copied.
func NewSurfaceFromPoints(pts []Point3) *Surface {
	cp := make([]Point3, len(pts))
	copy(cp, pts)
	return newSurface(cp)
}

func newSurface(pts []Point3) *Surface {
	vecs := make([]Vector3, len(pts))
	for i, p := range pts {
		vecs[i] = p.Vec()
	}
	return &Surface{vertices: pts, vecs: vecs, box: boundingBox(pts)}
}

// latticePoint places vertex i of n on a sphere of the given radius using the
// "lattice 3" even distribution: poles at i=0 and i=n-1, and
// (x, y) = ((i+6)/(n+11), i/phi) mapped to
// (theta, phi) = (acos(2x-1) - pi/2, 2*pi*y) in between.
func latticePoint(i, n int, radius Real) Point3 {
	var x, y Real
	switch {
	case i == 0:
		x, y = 0, 0
	case i == n-1:
		x, y = 1, 0
	default:
		x = (Real(i) + 6) / (Real(n) + 11)
		y = Real(i) / goldenRatio
	}
	theta := math.Acos(2*x-1) - math.Pi/2
	ts, tc := math.Sincos(theta)
	ps, pc := math.Sincos(2 * math.Pi * y)
	return Point3{
		coordOf(radius * tc * pc),
		coordOf(radius * tc * ps),
		coordOf(radius * ts),
	}
}

// Vertices returns a copy of the vertex list.
func (s *Surface) Vertices() []Point3 {
	cp := make([]Point3, len(s.vertices))
	copy(cp, s.vertices)
	return cp
}

func (s *Surface) Len() int { return len(s.vertices) }

// Box returns the precomputed bounding box of all vertices.
func (s *Surface) Box() BoundingBox { return s.box }

// FaceCount is the number of candidate faces, C(n, 3).
func (s *Surface) FaceCount() int { return choose3(len(s.vertices)) }

// Face returns the widened vertices of face f.
func (s *Surface) Face(f Face) (a, b, c Vector3) {
	return s.vecs[f.I], s.vecs[f.J], s.vecs[f.K]
}

func (s *Surface) String() string {
	parts := make([]string, len(s.vertices))
	for i, p := range s.vertices {
		parts[i] = p.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
