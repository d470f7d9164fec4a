package common

// Default window size.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
