package orth

import (
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultSolver is the solver used when WithSolver is not given.
const DefaultSolver = SolverGeneral

const (
	panicWorkersInvalid = "orth: WithWorkers: n must be >= 1"
	panicSolverInvalid  = "orth: WithSolver: unknown solver kind"
)

// Option configures Solve and AppOrth. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	solver  SolverKind
	workers int
	logger  zerolog.Logger
}

// defaultOptions returns the zero-configuration: general solver, one worker
// per GOMAXPROCS, no logging.
func defaultOptions() options {
	return options{
		solver:  DefaultSolver,
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithSolver selects the dense solver. SolverGeneral is the default.
func WithSolver(kind SolverKind) Option {
	if kind != SolverGeneral && kind != SolverCholesky {
		panic(panicSolverInvalid)
	}

	return func(o *options) { o.solver = kind }
}

// WithWorkers bounds the number of columns solved concurrently. n = 1 runs the
// columns sequentially in index order.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithLogger routes diagnostics (per-column debug lines, solver fallbacks,
// non-finite statistics) to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}
