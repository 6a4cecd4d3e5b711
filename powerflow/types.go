// Package powerflow defines the solver's types, tunables and sentinel
// errors.
package powerflow

import "errors"

// Sentinel errors for solver runs.
var (
	// ErrNilNetwork indicates Run was handed a nil network.
	ErrNilNetwork = errors.New("powerflow: network must not be nil")
	// ErrSingularSystem indicates the load sub-block of the conductance
	// matrix is not invertible for the current demand step.
	ErrSingularSystem = errors.New("powerflow: conductance sub-block is singular")
)

// Defaults for the Newton–Raphson iteration and the demand schedule.
const (
	// DefaultTolerance bounds the acceptable worst-case current mismatch.
	DefaultTolerance = 0.001
	// DefaultMaxIterations caps the Newton–Raphson loop. It should converge
	// in two; the cap keeps a non-converging system from looping forever.
	DefaultMaxIterations = 10
	// DefaultStartDemand is the first per-consumer current demand.
	DefaultStartDemand = 1.0
	// DefaultDemandStep is the per-step demand increment.
	DefaultDemandStep = 0.1
	// DefaultDemandLimit caps the sweep when the network never becomes
	// infeasible.
	DefaultDemandLimit = 1000.0
)

// Internal seeding constants for bus state.
const (
	// loadSeedPotential is the initial potential guess for all loads.
	loadSeedPotential = 1.0
	// resourceSeedCurrent is the placeholder injection for resources; the
	// per-step extraction overwrites it with the solved outflow.
	resourceSeedCurrent = 100.0
)

// Row is the result of one successfully solved demand step, in schedule
// order. Slice fields are indexed by local resource/consumer index.
type Row struct {
	Current         float64
	Length          float64
	ResourcePower   []float64
	ResourceVoltage []float64
	ConsumerPower   []float64
	ConsumerVoltage []float64
	TotalPower      float64
}

// Outcome records why the demand sweep stopped.
type Outcome int

const (
	// OutcomeScheduleExhausted: the demand limit was reached while the
	// network remained feasible.
	OutcomeScheduleExhausted Outcome = iota
	// OutcomeInfeasible: total consumed power went negative; the offending
	// step was discarded and the sweep stopped.
	OutcomeInfeasible
	// OutcomeSingular: a demand step's linear solve failed; prior rows are
	// preserved and the sweep stopped.
	OutcomeSingular
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case OutcomeScheduleExhausted:
		return "schedule exhausted"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeSingular:
		return "singular system"
	default:
		return "unknown"
	}
}

// Result is a full sweep: the ordered rows, the total link length reported
// on every row, and the stopping outcome.
type Result struct {
	Rows        []Row
	TotalLength float64
	Outcome     Outcome
}
