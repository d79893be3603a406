package facets

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// clampCoord clamps v into the lattice range [CoordMin, CoordMax].
func clampCoord(v int) int8 {
	if v > CoordMax {
		return CoordMax
	}
	if v < CoordMin {
		return CoordMin
	}
	return int8(v)
}

// satAdd adds two lattice coordinates. Overflow clamps to CoordMax,
// underflow to CoordMin; the sum never wraps.
func satAdd(a, b int8) int8 { return clampCoord(int(a) + int(b)) }

// coordOf truncates x toward zero and clamps it into the lattice range.
// NaN maps to 0.
func coordOf(x Real) int8 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= CoordMax {
		return CoordMax
	}
	if x <= CoordMin {
		return CoordMin
	}
	return int8(x)
}

// addByte is a saturating uint8 addition.
func addByte(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(s)
}

// byteOf floors x and clamps it to [0, 255]. NaN maps to 0.
func byteOf(x Real) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	x = math.Floor(x)
	if x <= 0 {
		return 0
	}
	if x >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(x)
}

// choose3 returns C(n, 3).
func choose3(n int) int {
	if n < 3 {
		return 0
	}
	return n * (n - 1) * (n - 2) / 6
}
