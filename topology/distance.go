package topology

import "math"

// Distance computes the separation of two native coordinate vectors under
// the space's metric:
//
//   - Plane: Euclidean distance (math.Hypot in two dimensions for accuracy).
//   - Sphere: both points are wrapped into the ball if their radial
//     component exceeds the radius, converted to cartesian, and measured
//     with the planar metric.
//   - SphereSurface: great-circle arc length on the configured radius.
//
// Returns ErrDimensionMismatch when the vectors differ in length, and
// ErrSurfaceDimension when a surface coordinate is not three-dimensional.
// Complexity: O(d).
func (s Space) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	switch s.kind {
	case Plane:
		return euclidean(a, b), nil

	case Sphere:
		wa, wb := a, b
		if a[0] > s.radius {
			var err error
			if wa, err = WrapPolar(a, s.radius); err != nil {
				return 0, err
			}
		}
		if b[0] > s.radius {
			var err error
			if wb, err = WrapPolar(b, s.radius); err != nil {
				return 0, err
			}
		}
		ca, err := s.ToCartesian(wa)
		if err != nil {
			return 0, err
		}
		cb, err := s.ToCartesian(wb)
		if err != nil {
			return 0, err
		}
		return euclidean(ca, cb), nil

	case SphereSurface:
		if len(a) != 3 {
			return 0, ErrSurfaceDimension
		}
		return s.arcLength(a, b), nil

	default:
		return 0, ErrUnknownKind
	}
}

// euclidean is the planar metric; assumes equal lengths (checked by callers).
func euclidean(a, b []float64) float64 {
	if len(a) == 2 {
		return math.Hypot(a[0]-b[0], a[1]-b[1])
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// arcLength computes the great-circle distance between two surface points
// (r, φ, θ) on the configured radius via the atan2 form, which stays
// accurate for antipodal and near-identical points.
func (s Space) arcLength(a, b []float64) float64 {
	dphi := math.Abs(a[1] - b[1])
	sinDphi, cosDphi := math.Sincos(dphi)
	sin1, cos1 := math.Sincos(a[2])
	sin2, cos2 := math.Sincos(b[2])

	y := math.Sqrt(math.Pow(cos2*sinDphi, 2) +
		math.Pow(cos1*sin2-sin1*cos2*cosDphi, 2))
	x := sin1*sin2 + cos1*cos2*cosDphi

	return s.radius * math.Atan2(y, x)
}
