package cassowary

import "sync/atomic"

// variableKindShift is the number of low bits reserved for the monotonic
// id; the remaining high bits encode the Kind. Five kinds fit in three bits.
const (
	variableKindShift = 61
	variableIDMask    = (uint64(1) << variableKindShift) - 1
)

var variableCounter uint64

// Variable identifies a term in the tableau: a regular (external),
// dummy, objective or slack/error symbol. It is a cheap, comparable
// scalar value carrying a monotonically increasing id and an immutable
// Kind, the same packed-integer trick casso's Symbol uses, extended with
// a fifth kind (Objective) for the solver's own objective-row subject.
//
// A Variable is shared by value: copying it copies an identifier, not the
// variable itself, so equality is identity (by id) as required by the
// data model. The solver, not the Variable, owns any mutable state (its
// current numeric value, debug name) associated with an id.
type Variable uint64

// zeroVariable is the invalid/unset Variable, analogous to casso's zero
// Symbol and to InvalidSymbolID in the design notes.
const zeroVariable Variable = 0

func newVariable(kind Kind) Variable {
	id := atomic.AddUint64(&variableCounter, 1) & variableIDMask
	return Variable(id | (uint64(kind) << variableKindShift))
}

// Kind reports the Variable's tag.
func (v Variable) Kind() Kind { return Kind(v >> variableKindShift) }

// IsZero reports whether v is the invalid/unset Variable.
func (v Variable) IsZero() bool { return v == zeroVariable }

// IsExternal reports whether v is a caller-visible (Regular) variable.
func (v Variable) IsExternal() bool { return !v.IsZero() && v.Kind() == External }

// IsSlack reports whether v is a Slack variable.
func (v Variable) IsSlack() bool { return !v.IsZero() && v.Kind() == Slack }

// IsError reports whether v is an Error variable.
func (v Variable) IsError() bool { return !v.IsZero() && v.Kind() == Error }

// IsDummy reports whether v is a Dummy variable.
func (v Variable) IsDummy() bool { return !v.IsZero() && v.Kind() == Dummy }

// IsObjective reports whether v is an Objective row subject.
func (v Variable) IsObjective() bool { return !v.IsZero() && v.Kind() == Objective }

// IsRestricted reports whether v must remain non-negative.
func (v Variable) IsRestricted() bool { return !v.IsZero() && v.Kind().Restricted() }

// IsPivotable reports whether v may enter the basis.
func (v Variable) IsPivotable() bool { return !v.IsZero() && v.Kind().Pivotable() }

// T builds a Term of v with the given coefficient, mirroring casso's
// Symbol.T and letting constraints be written tersely, e.g.
// cassowary.NewConstraint(cassowary.EQ, 0, x.T(1), y.T(-1)).
func (v Variable) T(coeff float64) Term { return Term{coeff: coeff, variable: v} }

// EQ, GTE and LTE build a single-variable constraint against a constant,
// e.g. x.EQ(100) is the constraint "x == 100".
func (v Variable) EQ(val float64) Constraint  { return NewConstraint(EQ, -val, v.T(1)) }
func (v Variable) GTE(val float64) Constraint { return NewConstraint(GTE, -val, v.T(1)) }
func (v Variable) LTE(val float64) Constraint { return NewConstraint(LTE, -val, v.T(1)) }

// Term is a (Variable, coefficient) pair. Terms are immutable values;
// Expression owns the mutable sequence they live in.
type Term struct {
	coeff    float64
	variable Variable
}

// Variable returns the term's variable.
func (t Term) Variable() Variable { return t.variable }

// Coefficient returns the term's coefficient.
func (t Term) Coefficient() float64 { return t.coeff }
