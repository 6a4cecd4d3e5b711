package powerflow

// Option adjusts the solver's numeric policy.
// Options panic on nonsensical values: misconfiguration is a programmer
// error, not a runtime condition.
type Option func(*config)

type config struct {
	tolerance     float64
	maxIterations int
	startDemand   float64
	demandStep    float64
	demandLimit   float64
	useStrength   bool
	strengthExp   float64
	progress      func(Row)
}

func defaultConfig() config {
	return config{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		startDemand:   DefaultStartDemand,
		demandStep:    DefaultDemandStep,
		demandLimit:   DefaultDemandLimit,
	}
}

// WithTolerance sets the worst-case current mismatch below which a demand
// step is considered converged. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("powerflow: WithTolerance requires tol > 0")
	}
	return func(c *config) { c.tolerance = tol }
}

// WithMaxIterations caps the Newton–Raphson loop per demand step.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("powerflow: WithMaxIterations requires n >= 1")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithSchedule replaces the demand sweep bounds: start at start, advance by
// step, stop past limit. Panics unless 0 < start <= limit and step > 0.
func WithSchedule(start, step, limit float64) Option {
	if start <= 0 || step <= 0 || limit < start {
		panic("powerflow: WithSchedule requires 0 < start <= limit and step > 0")
	}
	return func(c *config) {
		c.startDemand = start
		c.demandStep = step
		c.demandLimit = limit
	}
}

// WithProgress registers fn to observe every accepted row as the sweep
// advances. fn runs on the sweeping goroutine and must be fast.
// Panics if fn is nil.
func WithProgress(fn func(Row)) Option {
	if fn == nil {
		panic("powerflow: WithProgress requires a non-nil callback")
	}
	return func(c *config) { c.progress = fn }
}

// WithStrength makes link conductance strength-aware: strength^exponent
// divided by length, instead of the plain reciprocal of length.
// Panics if exponent <= 0.
func WithStrength(exponent float64) Option {
	if exponent <= 0 {
		panic("powerflow: WithStrength requires exponent > 0")
	}
	return func(c *config) {
		c.useStrength = true
		c.strengthExp = exponent
	}
}
