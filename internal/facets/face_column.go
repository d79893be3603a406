package facets

// columnRejecter is implemented by finders that can rule out a whole
// (x, y) ray column at once. Rejecting must never change a march result.
type columnRejecter interface {
	RejectsColumn(x, y Real) bool
}

var _ columnRejecter = (*BruteForce)(nil)

// RejectsColumn reports whether no z along (x, y) can reach the padded box.
func (f *BruteForce) RejectsColumn(x, y Real) bool {
	if !f.useBBox {
		return false
	}
	b := f.surf.box
	if b.Empty() {
		return true
	}
	return x < Real(b.Min.X)-f.pad || x > Real(b.Max.X)+f.pad ||
		y < Real(b.Min.Y)-f.pad || y > Real(b.Max.Y)+f.pad
}
