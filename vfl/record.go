package vfl

// Relation is the comparison a predicate's operand is checked against.
// It mirrors cassowary.Relation's three members but is declared
// independently: the parser depends only on this named domain concept,
// never on the solver package itself (leaf-to-root dependency order,
// spec §2).
type Relation uint8

const (
	EQ Relation = iota
	LTE
	GTE
)

var relationNames = [...]string{EQ: "==", LTE: "<=", GTE: ">="}

func (r Relation) String() string { return relationNames[r] }

// Strength is a constraint priority on the same four-tier ladder the
// solver uses (spec §3's "single real number" packing), declared here so
// a caller can hand @weak/@medium/@strong/@required straight to
// cassowary.Priority(strength) without this package importing cassowary.
type Strength float64

const (
	Weak     Strength = 1
	Medium   Strength = 1e3 * Weak
	Strong   Strength = 1e3 * Medium
	Required Strength = 1e3 * Strong
)

// ConstraintRecord is one emitted line of a parsed VFL predicate or
// inter-view spacing relation: "view1.attr1 relation (view2.attr2 *
// multiplier + constant)", or "view1.attr1 relation constant" when
// View2/Attr2 are nil. view1/view2 are borrowed name strings from the
// views map the caller supplied via SetViews; the super-view uses the
// literal name "super".
type ConstraintRecord struct {
	View1      string
	Attr1      string
	Relation   Relation
	View2      *string
	Attr2      *string
	Constant   float64
	Multiplier float64
	Strength   Strength
}
