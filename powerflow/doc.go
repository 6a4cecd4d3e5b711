// Package powerflow computes steady-state power flow in a resistive network
// by nodal analysis. Run takes a network.Network in a topology.Space plus
// the conductance weighting policy, and sweeps an increasing current-demand
// schedule:
//
//  1. Build the dense conductance matrix (a weighted Laplacian): for every
//     connected pair, conductance = 1/distance, or
//     strength^exponent/distance when strength weighting is enabled; each
//     diagonal term is the negated sum of its row. The geometry never
//     changes across demand steps, so the matrix is built once per run.
//  2. For each demand step, seed bus state (consumers demand current at
//     unit initial potential, branch points idle, resources hold their
//     fixed source voltage) and run a modified Newton–Raphson iteration
//     over the load sub-block: compute the current mismatch, stop when the
//     worst mismatch is within tolerance, otherwise solve
//     (−G_loads)·Δ = mismatch and apply the multiplicative update
//     V ← V·(1−Δ). Hitting the iteration cap is non-fatal; the last
//     potentials are taken as best effort.
//  3. Extract one result Row per solved step: per-resource outgoing power,
//     per-consumer power and potential, and the total consumed power.
//
// The sweep ends in one of three recorded outcomes: the schedule runs out
// (OutcomeScheduleExhausted), the total power turns negative and the step is
// discarded (OutcomeInfeasible — the network can no longer be supplied), or
// the step cannot be solved because the load sub-block is singular or the
// current balance turns non-finite, as with a zero-length link
// (OutcomeSingular — reported separately so numeric failure is not mistaken
// for physical infeasibility). A singular step abandons the sweep but
// preserves all prior rows.
//
// The multiplicative update V·(1−Δ) rather than the textbook V−Δ is kept
// deliberately: results are validated against the original study's
// reference outputs, not against assumed physics.
package powerflow
