package facets

import "fmt"

// Point3 is a surface vertex on the bounded integer lattice.
// Every coordinate stays within [CoordMin, CoordMax].
type Point3 struct {
	X, Y, Z int8
}

// NewPoint3 builds a lattice point, clamping each coordinate into range.
func NewPoint3(x, y, z int) Point3 {
	return Point3{clampCoord(x), clampCoord(y), clampCoord(z)}
}

// Add translates p by q with saturating arithmetic on every axis.
func (p Point3) Add(q Point3) Point3 {
	return Point3{satAdd(p.X, q.X), satAdd(p.Y, q.Y), satAdd(p.Z, q.Z)}
}

// Vec widens the point to floating point.
func (p Point3) Vec() Vector3 {
	return Vector3{Real(p.X), Real(p.Y), Real(p.Z)}
}

func (p Point3) String() string {
	return fmt.Sprintf("Point(%d, %d, %d)", p.X, p.Y, p.Z)
}
