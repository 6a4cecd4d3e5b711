// Package topology maps raw node coordinates onto a spatial geometry and
// answers the one question the rest of gridflow keeps asking: how far apart
// are two nodes? It supports:
//
//   - Plane: n-dimensional Euclidean space, native coordinates are cartesian
//   - Sphere: points inside a ball, native coordinates are generalized polar
//     (radius followed by angles), distance is Euclidean after conversion
//   - SphereSurface: points on a spherical shell, distance is the
//     great-circle arc length
//
// A Space is an immutable value built once from the run configuration (plane
// extents or sphere radius, plus an optional seeded random source) and passed
// by value wherever a geometry is needed. There is no process-wide topology
// state.
//
// Out-of-range ordinates are folded back into their canonical ranges with
// Wrap and WrapPolar: the radial component into [0, r], interior angles into
// [0, π], and the final angle into [0, 2π).
package topology
