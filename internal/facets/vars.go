package facets

var (
	Debug    = false // set to true for verbose debug output
	Progress = true  // set to false to silence render progress lines
	Gray     = false // set to true to write a single channel luminance image
	RAW      = false // set to true to also dump the raw sample buffer
	UseBBox  = true  // set to false to skip the bounding box pre-check (results are identical, only slower)
	// Compile time checks
	_ FaceFinder = (*BruteForce)(nil)
)
