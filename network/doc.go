// Package network composes the three node populations of a resistive power
// network — consumers, branch points and resources — with their shared
// connectivity structure, and polices the dimensional invariants between
// them: every coordinate across every role must have the same length, and
// the connectivity matrix must span exactly the total node count.
//
// The three roles share one flat 0-based index space in fixed order:
// consumers first, then branch points, then resources. The boundaries are
// computed once at construction and exposed through RoleOf and CoordsAt, so
// no caller needs to re-derive a role from index arithmetic.
//
// A Network is immutable after New, with one deliberate exception: the
// consumer-potential accumulator, an append-only side channel filled by the
// solver for downstream reporting.
package network
