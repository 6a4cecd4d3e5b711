// Package gridflow is a steady-state power-flow laboratory for spatial
// resistive networks — place consumers, branch points and power resources
// in a geometry, wire them up, and sweep demand until the grid gives out.
//
// 🚀 What is gridflow?
//
//	A small, reproducible simulation toolkit that brings together:
//		• Geometries: Euclidean planes, solid spheres and spherical shells
//		• Connectivity: symmetric sparse link matrices, random or hand-written
//		• Networks: consumers, branch points and fixed-potential resources
//		  over one flat node index space
//		• Solver: nodal conductance assembly + damped Newton–Raphson sweeps
//		• I/O: YAML run configuration and CSV imports/exports
//
// ✨ Why choose gridflow?
//
//   - Deterministic – every random draw flows from one configured seed
//   - Honest failure modes – infeasible and singular sweeps are outcomes,
//     not panics
//   - Closed-form testable – small networks solve exactly, and the tests
//     hold the solver to those values
//
// Under the hood, everything is organized under six subpackages:
//
//	topology/  — geometry kinds, native↔cartesian conversion, uniform sampling
//	connect/   — sparse symmetric connectivity with a resource-pair boundary
//	network/   — node roles, coordinates, potentials and export tables
//	powerflow/ — conductance assembly, Newton–Raphson, demand sweep
//	simconfig/ — YAML run configuration with validation
//	csvio/     — on-disk CSV formats for coordinates, links and results
//
// Quick ASCII example:
//
//	    C───B───R
//
//	a consumer C fed through a branch point B by a resource R; at 1 A over
//	two unit links the consumer sits two volts below the source.
//
//	go get github.com/katalvlaran/gridflow
package gridflow
