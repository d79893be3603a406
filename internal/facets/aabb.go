package facets

// BoundingBox is the axis-aligned extent of a surface's vertices.
type BoundingBox struct {
	Min, Max Point3
}

// boundingBox computes the componentwise min/max of pts in one pass.
// An empty input yields an inverted box that contains nothing.
func boundingBox(pts []Point3) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{
			Min: Point3{CoordMax, CoordMax, CoordMax},
			Max: Point3{CoordMin, CoordMin, CoordMin},
		}
	}
	b := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b
}

func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Contains reports whether p lies inside the box grown by pad on every side.
func (b BoundingBox) Contains(p Vector3, pad Real) bool {
	if b.Empty() {
		return false
	}
	return p.X >= Real(b.Min.X)-pad && p.X <= Real(b.Max.X)+pad &&
		p.Y >= Real(b.Min.Y)-pad && p.Y <= Real(b.Max.Y)+pad &&
		p.Z >= Real(b.Min.Z)-pad && p.Z <= Real(b.Max.Z)+pad
}
