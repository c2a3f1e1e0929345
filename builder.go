package cassowary

// pendingOp is the operator a Builder will apply to the next term or
// constant it receives.
type pendingOp uint8

const (
	opReplace pendingOp = iota
	opAdd
	opSubtract
	opMultiply
	opDivide
)

// Builder assembles a compound Expression term by term, the ergonomic
// counterpart to writing out NewExpression(constant, terms...) by hand.
// Plus/Minus queue an additive operator consumed by the next term or
// constant. MultiplyBy/DivideBy take their factor directly and scale the
// expression at once; they do not queue an operator for a later call.
// Only the first Term/Coefficient/Constant on a fresh Builder sets the
// expression; after every call the pending operator reverts to addition,
// so a later bare Term or Constant adds to the expression and never
// replaces it.
//
// Builder does not itself talk to a Solver; it exists purely to produce
// an Expression that the caller then hands to AddConstraint et al. (the
// solver parameter accepted by the constructor is retained for parity
// with the documented API shape and reserved for future notification
// hooks; it is not dereferenced today).
type Builder struct {
	solver *Solver
	expr   Expression
	op     pendingOp
}

// NewBuilder starts a fresh Builder. solver may be nil.
func NewBuilder(solver *Solver) *Builder {
	return &Builder{solver: solver, op: opReplace}
}

func (b *Builder) apply(coeff float64, variable Variable, constant float64) {
	switch b.op {
	case opReplace:
		if variable.IsZero() {
			b.expr = NewExpression(constant)
		} else {
			b.expr = NewExpression(0, Term{coeff: coeff, variable: variable})
		}
	case opAdd:
		if variable.IsZero() {
			b.expr.constant += constant
		} else {
			b.expr.AddTerm(coeff, variable)
		}
	case opSubtract:
		if variable.IsZero() {
			b.expr.constant -= constant
		} else {
			b.expr.AddTerm(-coeff, variable)
		}
	case opMultiply:
		b.expr.constant *= constant
		for i := range b.expr.terms {
			b.expr.terms[i].coeff *= constant
		}
	case opDivide:
		b.expr.constant /= constant
		for i := range b.expr.terms {
			b.expr.terms[i].coeff /= constant
		}
	}
	b.op = opAdd
}

// Term folds variable (with an implicit coefficient of 1) into the
// expression being built, honouring whatever operator is pending.
func (b *Builder) Term(variable Variable) *Builder {
	b.apply(1, variable, 0)
	return b
}

// Coefficient folds coeff·variable into the expression being built.
func (b *Builder) Coefficient(coeff float64, variable Variable) *Builder {
	b.apply(coeff, variable, 0)
	return b
}

// Constant folds a bare constant into the expression being built.
func (b *Builder) Constant(value float64) *Builder {
	b.apply(0, zeroVariable, value)
	return b
}

// Plus queues addition for the next Term/Coefficient/Constant call.
func (b *Builder) Plus() *Builder { b.op = opAdd; return b }

// Minus queues subtraction for the next Term/Coefficient/Constant call.
func (b *Builder) Minus() *Builder { b.op = opSubtract; return b }

// MultiplyBy scales the expression built so far by factor immediately.
func (b *Builder) MultiplyBy(factor float64) *Builder {
	b.op = opMultiply
	b.apply(0, zeroVariable, factor)
	return b
}

// DivideBy scales the expression built so far by 1/factor immediately.
func (b *Builder) DivideBy(factor float64) *Builder {
	b.op = opDivide
	b.apply(0, zeroVariable, factor)
	return b
}

// Finish returns the built Expression.
func (b *Builder) Finish() Expression { return b.expr }
