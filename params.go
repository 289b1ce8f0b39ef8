package helix

// Params configures the codec's constraint enforcement. The zero value is
// not useful for Ell (the rll stage makes no substitution at all when Ell is
// 0, so no run limit is enforced); use DefaultParams to get a usable
// starting point.
type Params struct {
	// Ell is the maximum permitted homopolymer run length. Typical values
	// are 2, 3, or 4.
	Ell int
	// Epsilon is the GC-content tolerance around 0.5. Typical values are
	// in [0.03, 0.15].
	Epsilon float64
	// VTEnabled turns on the optional Varshamov-Tenengolts footer for
	// single-edit detection.
	VTEnabled bool
	// Strict turns InfeasibleConstraints from a warning (best-effort GC
	// result returned silently) into a fatal encode error.
	Strict bool
}

// DefaultParams returns the codec's recommended defaults: Ell=3,
// Epsilon=0.05, VTEnabled=true, Strict=false.
func DefaultParams() Params {
	return Params{
		Ell:       3,
		Epsilon:   0.05,
		VTEnabled: true,
		Strict:    false,
	}
}
