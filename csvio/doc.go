// Package csvio adapts gridflow's on-disk CSV formats.
//
// Coordinate files carry cartesian ordinates with 1-based ids and are
// converted to the active geometry's native coordinates on read. Edge
// lists are 1-based on disk and 0-based in memory. Writers enforce the
// header contract: every row must match the header's width.
package csvio
