package facets

import "testing"

func TestBoundingBox(t *testing.T) {
	b := boundingBox(tetra)
	if b.Min != (Point3{-70, -64, -96}) || b.Max != (Point3{8, 95, 96}) {
		t.Fatalf("unexpected box: %+v", b)
	}
	if !b.Contains(Vector3{0, 0, 0}, 0) {
		t.Fatal("origin should be inside")
	}
	if b.Contains(Vector3{9, 0, 0}, 0) {
		t.Fatal("x=9 should be outside without pad")
	}
	if !b.Contains(Vector3{9, 0, 0}, 1) {
		t.Fatal("x=9 should be inside with pad 1")
	}
	if b.Contains(Vector3{0, 0, 192}, 1) {
		t.Fatal("far point should be outside")
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	b := boundingBox(nil)
	if !b.Empty() {
		t.Fatal("box of nothing must be empty")
	}
	if b.Contains(Vector3{}, 10) {
		t.Fatal("empty box must contain nothing")
	}
	one := boundingBox([]Point3{{3, -4, 5}})
	if one.Empty() || one.Min != one.Max {
		t.Fatalf("single point box wrong: %+v", one)
	}
}
