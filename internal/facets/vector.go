package facets

import "math"

// Vector3 is a continuous 3D vector used for queries, normals and lighting.
type Vector3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Div divides by a scalar. The caller guarantees s != 0.
func (v Vector3) Div(s Real) Vector3 { return Vector3{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a x b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		det2(a.Y, a.Z, b.Y, b.Z),
		-det2(a.X, a.Z, b.X, b.Z),
		det2(a.X, a.Y, b.X, b.Y),
	}
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// The zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Project returns the component of v along onto.
// Projecting onto the zero vector yields the zero vector.
func (v Vector3) Project(onto Vector3) Vector3 {
	oo := onto.Dot(onto)
	if oo == 0 {
		return Vector3{}
	}
	return onto.Mul(v.Dot(onto) / oo)
}

// Reflect mirrors v about the line spanned by the plane normal n:
// the component along n is kept, the in-plane component flips.
func (v Vector3) Reflect(n Vector3) Vector3 {
	proj := v.Project(n)
	return proj.Sub(v.Sub(proj))
}

func (v Vector3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

func det2(a, b, c, d Real) Real { return a*d - b*c }
