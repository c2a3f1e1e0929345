package cassowary

// Kind tags what role a Variable plays inside the tableau. It is the Go
// analogue of the source's GtkConstraintVariableType / casso's SymbolKind.
type Kind uint8

const (
	// External variables are created by callers via CreateVariable/New and
	// are shared between the solver and the caller.
	External Kind = iota
	// Slack variables turn an inequality into an equality.
	Slack
	// Error variables carry the positive/negative deviation of a
	// non-required equality (including stays and edits) for the objective
	// row to minimize.
	Error
	// Dummy variables mark a required equality row without being
	// pivotable.
	Dummy
	// Objective is the kind of the row subject that holds the weighted
	// error function. There is exactly one per Solver.
	Objective
)

var kindNames = [...]string{
	External:  "External",
	Slack:     "Slack",
	Error:     "Error",
	Dummy:     "Dummy",
	Objective: "Objective",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Restricted reports whether a variable of this kind must remain
// non-negative (spec's is_restricted).
func (k Kind) Restricted() bool { return k == Slack || k == Error }

// Pivotable reports whether a variable of this kind may enter the basis
// (spec's is_pivotable). Only Slack and Error variables are pivotable;
// External variables are never chosen by the objective-row ratio test,
// and Dummy/Objective variables must never enter the basis at all.
func (k Kind) Pivotable() bool { return k == Slack || k == Error }

// IsDummy reports whether this is the Dummy kind (spec's is_dummy).
func (k Kind) IsDummy() bool { return k == Dummy }
