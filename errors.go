package cassowary

import "errors"

// Sentinel errors returned by the public Solver API. The solver never
// panics across this boundary: unsatisfiable constraints and missing
// edit/stay targets are logged and treated as no-ops (see Solver.logger),
// matching the failure semantics described for the core.
var (
	// ErrUnknownSymbol is returned when a constraint references a Variable
	// the solver never created.
	ErrUnknownSymbol = errors.New("cassowary: constraint references an unknown variable")
	// errUnsatisfiable is returned internally while installing a required
	// constraint that cannot be made consistent; callers never see it,
	// since AddConstraint degrades this to a logged no-op per the
	// documented failure semantics.
	errUnsatisfiable = errors.New("cassowary: required constraint is unsatisfiable")
	// errInternal marks corruption that should never happen in a correct
	// tableau (e.g. dual-optimize finding no entry candidate, or an
	// artificial variable that could not be pivoted out). The solver logs
	// it at Error level and keeps running rather than panicking; missing
	// edit/stay targets on removal/suggestion are instead logged at Debug
	// level and treated as plain no-ops, since those are caller
	// bookkeeping slips rather than tableau corruption. A stale or alien
	// ConstraintRef passed to RemoveConstraint is a silent no-op.
	errInternal = errors.New("cassowary: internal solver inconsistency")
)
