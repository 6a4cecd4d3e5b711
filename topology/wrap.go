package topology

import "math"

// Wrap folds n into the canonical range [0, limit) by modular arithmetic,
// shifting negative remainders up by limit. Returns ErrNonPositiveLimit when
// limit ≤ 0.
// Complexity: O(1).
func Wrap(n, limit float64) (float64, error) {
	if limit <= 0 {
		return 0, ErrNonPositiveLimit
	}
	wrapped := math.Mod(n, limit)
	if wrapped < 0 {
		wrapped += limit
	}
	return wrapped, nil
}

// WrapPolar folds a polar coordinate vector into canonical ranges: the
// radial component into [0, r], interior angles into [0, π], and the final
// angle into [0, 2π). The input is not mutated. Returns ErrDimensionMismatch
// when x has fewer than two ordinates.
// Complexity: O(d).
func WrapPolar(x []float64, r float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, ErrDimensionMismatch
	}

	w := append([]float64(nil), x...)

	var err error
	if w[0], err = Wrap(w[0], r); err != nil {
		return nil, err
	}
	for i := 1; i < len(w)-1; i++ {
		if w[i], err = Wrap(w[i], math.Pi); err != nil {
			return nil, err
		}
	}
	if w[len(w)-1], err = Wrap(w[len(w)-1], 2*math.Pi); err != nil {
		return nil, err
	}

	return w, nil
}
