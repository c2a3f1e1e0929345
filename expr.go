package cassowary

// coeffEpsilon is the tolerance used for every coefficient/constant
// comparison against zero in the algebra and tableau layers (spec
// §4.1/§9: "≈ 1e-3 for coefficients in the solver's hot path"). Test
// assertions are free to use a tighter tolerance (1e-8); that only
// applies to test code, never to this layer.
const coeffEpsilon = 1.0e-3

func nearZero(val float64) bool {
	if val < 0 {
		return -val < coeffEpsilon
	}
	return val < coeffEpsilon
}

// Expression is a linear combination `constant + Σ coefficient·variable`.
// Terms are kept in insertion order because choose_subject (see
// Solver.findSubject) walks them in reverse insertion order and the
// result of that walk affects which constraints are satisfiable — the
// same invariant casso's Expr preserves with its term slice.
//
// Every structural mutation (a term appearing, disappearing, or its
// coefficient changing) bumps age, an internal counter snapshotted by
// Terms' iterator so that mutating an Expression while iterating it is
// detected rather than silently corrupting the walk.
type Expression struct {
	constant float64
	terms    []Term
	age      uint64
}

// NewExpression builds an Expression from a constant and an initial set
// of terms, e.g. NewExpression(0, x.T(1), y.T(-1)) for "x - y".
func NewExpression(constant float64, terms ...Term) Expression {
	e := Expression{constant: constant}
	if len(terms) > 0 {
		e.terms = make([]Term, 0, len(terms))
		for _, t := range terms {
			e.AddTerm(t.coeff, t.variable)
		}
	}
	return e
}

// Clone returns a deep copy of e; the clone's own age counter starts
// fresh since it is a distinct, independently-mutable Expression.
func (e Expression) Clone() Expression {
	res := Expression{constant: e.constant}
	if len(e.terms) > 0 {
		res.terms = make([]Term, len(e.terms))
		copy(res.terms, e.terms)
	}
	return res
}

// Constant returns the expression's constant term.
func (e Expression) Constant() float64 { return e.constant }

// Len reports the number of non-zero terms.
func (e Expression) Len() int { return len(e.terms) }

// find returns the slice index of variable's term, or -1.
func (e Expression) find(variable Variable) int {
	for i := range e.terms {
		if e.terms[i].variable == variable {
			return i
		}
	}
	return -1
}

// Coefficient returns the coefficient of variable in e, or 0 if absent.
func (e Expression) Coefficient(variable Variable) float64 {
	if idx := e.find(variable); idx != -1 {
		return e.terms[idx].coeff
	}
	return 0
}

func (e *Expression) deleteAt(idx int) {
	copy(e.terms[idx:], e.terms[idx+1:])
	e.terms = e.terms[:len(e.terms)-1]
	e.age++
}

// AddTerm adds coeff·variable to e, merging into any existing term for
// variable. A coefficient that nets to (approximately) zero is eagerly
// removed — the spec's "coefficient == 0 terms are eagerly removed".
func (e *Expression) AddTerm(coeff float64, variable Variable) {
	idx := e.find(variable)
	if idx == -1 {
		if !nearZero(coeff) {
			e.terms = append(e.terms, Term{coeff: coeff, variable: variable})
			e.age++
		}
		return
	}
	e.terms[idx].coeff += coeff
	if nearZero(e.terms[idx].coeff) {
		e.deleteAt(idx)
		return
	}
	e.age++
}

// RemoveTerm deletes variable's term entirely, if present.
func (e *Expression) RemoveTerm(variable Variable) {
	if idx := e.find(variable); idx != -1 {
		e.deleteAt(idx)
	}
}

// SetVariable inserts or replaces variable's term with coeff, removing
// it outright when coeff is (approximately) zero.
func (e *Expression) SetVariable(variable Variable, coeff float64) {
	idx := e.find(variable)
	if nearZero(coeff) {
		if idx != -1 {
			e.deleteAt(idx)
		}
		return
	}
	if idx == -1 {
		e.terms = append(e.terms, Term{coeff: coeff, variable: variable})
	} else {
		e.terms[idx].coeff = coeff
	}
	e.age++
}

// Negate flips the sign of every term and the constant.
func (e *Expression) Negate() {
	e.constant = -e.constant
	for i := range e.terms {
		e.terms[i].coeff = -e.terms[i].coeff
	}
	e.age++
}

// AddExpression performs self += n·other. When solver is non-nil, every
// variable that newly appears in self as a result is announced via
// solver.noteAddedVariable(variable, subject), and every variable that
// disappears entirely via solver.noteRemovedVariable(variable, subject),
// so the solver's column index (parametric variable -> rows mentioning
// it) can be kept in sync with subject's row. subject is the basic
// variable that owns this Expression as its row definition; pass
// zeroVariable when self is not a tracked tableau row (e.g. the
// objective or an artificial row), which also suppresses notification.
func (e *Expression) AddExpression(other Expression, n float64, subject Variable, solver *Solver) {
	e.constant += n * other.constant
	for _, t := range other.terms {
		before := e.find(t.variable) != -1
		e.AddTerm(n*t.coeff, t.variable)
		after := e.find(t.variable) != -1

		if solver == nil || subject.IsZero() {
			continue
		}
		switch {
		case !before && after:
			solver.noteAddedVariable(t.variable, subject)
		case before && !after:
			solver.noteRemovedVariable(t.variable, subject)
		}
	}
}

// SubstituteOut replaces every occurrence of variable in e with
// replacement (scaled by variable's coefficient in e), following the
// same solver-notification contract as AddExpression.
func (e *Expression) SubstituteOut(variable Variable, replacement Expression, subject Variable, solver *Solver) {
	idx := e.find(variable)
	if idx == -1 {
		return
	}
	coeff := e.terms[idx].coeff
	e.deleteAt(idx)
	if solver != nil && !subject.IsZero() {
		solver.noteRemovedVariable(variable, subject)
	}
	e.AddExpression(replacement, coeff, subject, solver)
}

// NewSubject rearranges e so that variable becomes the subject of
// `variable = e`, i.e. it divides every other term (and the constant) by
// -variable's coefficient and removes variable from the term list,
// returning the reciprocal that was applied. It discards any prior
// subject; callers that need to preserve one should use ChangeSubject.
func (e *Expression) NewSubject(variable Variable) float64 {
	idx := e.find(variable)
	if idx == -1 {
		return 0
	}
	reciprocal := -1.0 / e.terms[idx].coeff
	e.deleteAt(idx)
	if reciprocal != 1.0 {
		e.constant *= reciprocal
		for i := range e.terms {
			e.terms[i].coeff *= reciprocal
		}
		e.age++
	}
	return reciprocal
}

// ChangeSubject rearranges an expression of the form `oldSubject = e`
// (oldSubject implicitly already isolated by the caller) so that
// newSubject, which must appear in e with a non-zero coefficient, becomes
// the subject instead: it removes newSubject's term, negates and scales
// the remainder by the reciprocal of that coefficient, then reinstates
// oldSubject with coefficient equal to the reciprocal.
func (e *Expression) ChangeSubject(oldSubject, newSubject Variable) {
	e.AddTerm(-1.0, oldSubject)
	e.NewSubject(newSubject)
}

// Terms returns a forward Iterator over e's terms, snapshotting e's
// current age.
func (e *Expression) Terms() *Iterator {
	return &Iterator{terms: e.terms, age: e.age, owner: e, pos: -1}
}

// ReverseTerms returns a backward Iterator over e's terms (last term
// first), snapshotting e's current age. Solver.findSubject relies on
// this ordering: it walks a constraint's normalized expression in
// reverse insertion order.
func (e *Expression) ReverseTerms() *Iterator {
	return &Iterator{terms: e.terms, age: e.age, owner: e, pos: len(e.terms), back: true}
}

// Iterator is a restartable, age-checked walk over an Expression's or
// VariableSet's terms/members, in either direction. Structural mutation
// of the owner during iteration is a programming error: Next panics
// with ErrIteratorStale rather than silently walking a stale slice,
// mirroring the "age-tagged iterators" design note.
type Iterator struct {
	terms []Term
	age   uint64
	owner interface{ currentAge() uint64 }
	pos   int
	back  bool
}

// ErrIteratorStale is the panic value raised by an Iterator whose owner
// mutated structurally since the iterator was created.
var ErrIteratorStale = "cassowary: iterator used after its Expression/VariableSet was mutated"

func (it *Iterator) checkAge() {
	if it.owner.currentAge() != it.age {
		panic(ErrIteratorStale)
	}
}

// Reset restarts the iterator at the beginning (forward) or end
// (backward), re-snapshotting age so a fresh walk after a legitimate
// rebuild does not spuriously panic.
func (it *Iterator) Reset(reverse bool) {
	it.pos = -1
	it.back = reverse
	if reverse {
		it.pos = len(it.terms)
	}
	it.age = it.owner.currentAge()
}

// Next advances the iterator and returns the next term and true, or a
// zero Term and false once exhausted.
func (it *Iterator) Next() (Term, bool) {
	it.checkAge()
	if it.back {
		it.pos--
		if it.pos < 0 {
			return Term{}, false
		}
	} else {
		it.pos++
		if it.pos >= len(it.terms) {
			return Term{}, false
		}
	}
	return it.terms[it.pos], true
}

func (e *Expression) currentAge() uint64 { return e.age }
