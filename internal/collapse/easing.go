package collapse

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(p float64) float64

// CubicInOut is the default symmetric cubic ease-in-out curve.
func CubicInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	f := -2*p + 2
	return 1 - f*f*f/2
}

// Linear eases nothing.
func Linear(p float64) float64 { return p }

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
