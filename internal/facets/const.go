package facets

type Real = float64

// Channel indices for readability.
const (
	ChR            = 0
	ChG            = 1
	ChB            = 2
	CoordMin       = -127 // lattice coordinates live in [CoordMin, CoordMax] on every axis; symmetric, -128 is never produced
	CoordMax       = 127
	Radius         = 96.0 // base radius of the vertex lattice sphere
	JitterRange    = 30   // jitter magnitude of the mildest non-zero randomness tier
	MaxVertices    = 255
	PlaneTolerance = 1.0                   // max distance of a query point from a face plane, in lattice units
	BaryEpsilon    = 2.220446049250313e-16 // slack on barycentric coefficients (float64 machine epsilon)
	Ambient        = 0x2f
	Background     = 0x0f
	MaxLight       = 0xf5
	ImageRes       = 675
	ProbePixels    = 64
	OutFile        = "tmp.png"
	// bounding box pad on top of PlaneTolerance so the pre-check never rejects a point the scan accepts
	bboxSlack = 1e-6
)

// Default light setup: view straight down the Z axis, light from the upper left front.
var (
	DefaultIncident = Vector3{0, 0, -1}
	DefaultLightDir = Vector3{-1, -1, 1}
)
