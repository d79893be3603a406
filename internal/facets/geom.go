package facets

// planeNormal returns the unit normal of the plane through a, b, c.
// a, b, c must not be collinear.
func planeNormal(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a)).Norm()
}

// isInTriangle reports whether p lies on triangle abc: within PlaneTolerance
// of its plane, and inside its footprint once flattened onto that plane.
// Collinear or duplicate vertices never match.
func isInTriangle(p, a, b, c Vector3) bool {
	u := b.Sub(a)
	v := c.Sub(a)
	w := p.Sub(a)

	n := u.Cross(v)
	nn := n.Dot(n)
	if nn == 0 {
		return false
	}
	off := n.Mul(w.Dot(n) / nn)
	if off.Len() > PlaneTolerance {
		return false
	}
	w = w.Sub(off)

	// barycentric solve on the plane
	uu := u.Dot(u)
	vv := v.Dot(v)
	uv := u.Dot(v)
	up := u.Dot(w)
	vp := v.Dot(w)
	denom := vv*uu - uv*uv
	if denom == 0 || !isFinite(denom) {
		return false
	}
	vc := (uu*vp - uv*up) / denom
	uc := (vv*up - uv*vp) / denom
	return vc >= -BaryEpsilon && uc >= -BaryEpsilon && uc+vc <= 1
}
