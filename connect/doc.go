// Package connect stores which nodes of a power network are linked and how
// strongly. The Matrix type is a symmetric, non-reflexive, sparse mapping
// from unordered index pairs {i,j} to a connection strength; absence of a
// connection is expressed through a caller-supplied sentinel value rather
// than a missing entry, so reads never distinguish "never stored" from
// "stored as disconnected".
//
// A boundary index, the connectable count, partitions the flat index space:
// pairs in which both members lie at or beyond the boundary (both are
// resources) can never be connected. All three constructors enforce this.
//
// Construction paths:
//
//   - NewFromGrid: a dense N×N grid in which only one of [i][j]/[j][i] needs
//     to be populated; the other may hold the sentinel
//   - NewRandom: independent Bernoulli draws per admissible pair with
//     uniformly sampled strengths, using an injectable seeded source
//   - NewFromEdges: a sparse (from, to, strength) edge list, symmetrized
//
// Matrices are immutable after construction. The number of distinct
// connected pairs is tracked incrementally and reported by Size.
package connect
