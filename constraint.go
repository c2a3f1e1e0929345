package cassowary

import "github.com/google/uuid"

// Relation is the comparison a Constraint's normalized expression must
// satisfy against zero.
type Relation uint8

const (
	EQ Relation = iota
	LTE
	GTE
)

var relationNames = [...]string{EQ: "==", LTE: "<=", GTE: ">="}

func (r Relation) String() string { return relationNames[r] }

// Priority is the weight attached to a constraint. It is either one of
// the four symbolic tiers below or any positive custom value; spec §3
// requires only that required > strong > medium > weak hold strictly no
// matter how many lower-tier constraints exist, which a 1000x-spaced
// geometric ladder satisfies for any realistic constraint count, the
// same packing casso's Priority uses (its relation to the positional
// pack(a,b,c,w) formula is noted in DESIGN.md).
type Priority float64

const (
	Weak     Priority = 1
	Medium   Priority = 1e3 * Weak
	Strong   Priority = 1e3 * Medium
	Required Priority = 1e3 * Strong
)

// Val returns the priority as a bare weight, for use in objective-row
// arithmetic.
func (p Priority) Val() float64 { return float64(p) }

// Constraint is the caller-facing description of a linear constraint:
// expr (relation) 0, e.g. NewConstraint(LTE, -100, x.T(1), y.T(-1)) means
// "x - y <= 100".
type Constraint struct {
	relation Relation
	expr     Expression
}

// NewConstraint builds a Constraint from a relation, a constant and a set
// of terms, matching casso's NewConstraint convenience constructor.
func NewConstraint(relation Relation, constant float64, terms ...Term) Constraint {
	return Constraint{relation: relation, expr: NewExpression(constant, terms...)}
}

// NewVariableConstraint builds the Constraint for "subject relation
// expr" (spec §4.2.2's incoming (variable, relation, expression, weight)
// shape), normalizing it the way the solver's add_constraint does before
// a subject is chosen: expr - subject for == and <=, subject - expr for
// >=. Both inequalities come out as "normalized >= 0".
func NewVariableConstraint(subject Variable, relation Relation, expr Expression) Constraint {
	normalized := expr.Clone()
	if relation == GTE {
		// variable - expr >= 0
		normalized.Negate()
		normalized.AddTerm(1, subject)
	} else {
		// expr - variable = 0 for ==; for <= the same expression must
		// stay non-negative, so it is installed as a >= constraint
		normalized.AddTerm(-1, subject)
		if relation == LTE {
			relation = GTE
		}
	}
	return Constraint{relation: relation, expr: normalized}
}

func (c Constraint) clone() Constraint {
	return Constraint{relation: c.relation, expr: c.expr.Clone()}
}

// Tag records the pair of symbols a constraint installed when it entered
// the tableau: marker locates the row (or column) to remove the
// constraint, and other is the second error variable for a non-required
// equality/stay/edit.
type Tag struct {
	priority Priority
	marker   Variable
	other    Variable
}

type constraintKind uint8

const (
	kindOrdinary constraintKind = iota
	kindStay
	kindEdit
)

// constraintRecord is the tagged-variant representation the design notes
// call for: one structure for ordinary, stay and edit constraints
// sharing the common tag/marker/priority fields, instead of three
// parallel maps.
type constraintRecord struct {
	kind         constraintKind
	tag          Tag
	target       Variable // stay/edit: the pinned/editable variable
	prevConstant float64  // edit only: the last value passed to SuggestValue
	generation   uint32
	active       bool
}

// ConstraintRef is an opaque handle to a constraint stored inside the
// solver. It stays valid until RemoveConstraint/RemoveStayVariable/
// RemoveEditVariable is called with it, after which it is inert: passing
// a stale or alien ConstraintRef back to the solver is a documented
// no-op, never a panic. The generation counter guards against an arena
// slot being reused by a later constraint; token is a purely cosmetic
// uuid carried so a ref prints as a stable, human-distinguishable string
// in logs and debug dumps without exposing the arena's internal layout.
type ConstraintRef struct {
	index      uint32
	generation uint32
	token      uuid.UUID
}

// IsZero reports whether ref is the zero value. The solver returns it
// alongside an error, and for a required constraint it dropped as
// unsatisfiable; removing it is a no-op.
func (ref ConstraintRef) IsZero() bool { return ref == ConstraintRef{} }

func (ref ConstraintRef) String() string { return ref.token.String() }

// constraintArena hands out generation-guarded slots for constraintRecord
// values, the "arena + generational index" substitute for a raw owning
// pointer the design notes call for.
type constraintArena struct {
	slots []constraintRecord
	free  []uint32
}

func (a *constraintArena) insert(rec constraintRecord) ConstraintRef {
	rec.active = true
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		rec.generation = a.slots[idx].generation + 1
		a.slots[idx] = rec
		return ConstraintRef{index: idx, generation: rec.generation, token: uuid.New()}
	}
	rec.generation = 1
	a.slots = append(a.slots, rec)
	return ConstraintRef{index: uint32(len(a.slots) - 1), generation: rec.generation, token: uuid.New()}
}

// get returns the live record for ref, or (zero, false) if ref is stale
// or out of range.
func (a *constraintArena) get(ref ConstraintRef) (constraintRecord, bool) {
	if int(ref.index) >= len(a.slots) {
		return constraintRecord{}, false
	}
	rec := a.slots[ref.index]
	if !rec.active || rec.generation != ref.generation {
		return constraintRecord{}, false
	}
	return rec, true
}

// remove invalidates ref's slot, if it is still live, and returns the
// record that was removed.
func (a *constraintArena) remove(ref ConstraintRef) (constraintRecord, bool) {
	rec, ok := a.get(ref)
	if !ok {
		return constraintRecord{}, false
	}
	a.slots[ref.index].active = false
	a.free = append(a.free, ref.index)
	return rec, true
}

func (a *constraintArena) reset() {
	a.slots = nil
	a.free = nil
}
