package cassowary

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Solver is a Cassowary simplex tableau: it accepts equality and
// inequality constraints at a weight drawn from a four-tier priority
// hierarchy, compiles each into normal form, maintains an objective row
// minimizing weighted error, and solves incrementally. A single Solver
// value is meant to be owned by one goroutine at a time; none of its
// methods are safe for concurrent use without external synchronization
// (see spec §5 — the tableau has no internal locking and no suspension
// points).
type Solver struct {
	logger logrus.FieldLogger

	rows    map[Variable]Expression     // basic variable -> row definition
	columns map[Variable]*VariableSet   // parametric variable -> basic vars whose row mentions it

	known              map[Variable]struct{} // every variable this solver has ever minted
	externalParametric map[Variable]struct{} // external vars that have appeared as a term somewhere
	values             map[Variable]float64   // last committed value per variable
	names              map[Variable]string    // debug prefix+name, external variables only

	objectiveVar Variable
	objective    Expression
	artificial   Expression

	infeasible []Variable

	arena constraintArena
	edits map[Variable]ConstraintRef
	stays map[Variable]ConstraintRef

	autoSolve     bool
	needsSolving  bool
	inEditPhase   bool
	freezeCount   int
	optimizeCount int
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger overrides the default logrus.StandardLogger() debug/error
// sink used for the documented logged-and-continue failure modes (§7).
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Solver) { s.logger = logger }
}

// NewSolver builds an empty, ready-to-use Solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		logger:             logrus.StandardLogger(),
		rows:               make(map[Variable]Expression),
		columns:            make(map[Variable]*VariableSet),
		known:              make(map[Variable]struct{}),
		externalParametric: make(map[Variable]struct{}),
		values:             make(map[Variable]float64),
		names:              make(map[Variable]string),
		edits:              make(map[Variable]ConstraintRef),
		stays:              make(map[Variable]ConstraintRef),
		autoSolve:          true,
	}
	s.objectiveVar = newVariable(Objective)
	s.known[s.objectiveVar] = struct{}{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New creates an anonymous external variable with an initial value of 0,
// the convenience shape casso's Solver.New offers.
func (s *Solver) New() Variable { return s.CreateVariable("", "", 0) }

// CreateVariable creates an external variable. prefix and name are for
// debugging only; value seeds the variable's reported Value until a
// constraint gives it a computed one.
func (s *Solver) CreateVariable(prefix, name string, value float64) Variable {
	v := newVariable(External)
	s.known[v] = struct{}{}
	s.values[v] = value
	if prefix != "" || name != "" {
		s.names[v] = prefix + name
	}
	return v
}

// Name returns the debug name given to v via CreateVariable, or "".
func (s *Solver) Name(v Variable) string { return s.names[v] }

// Value returns v's value as of the last commit (the last auto-solve, or
// the next explicit Resolve if AutoSolve is disabled).
func (s *Solver) Value(v Variable) float64 { return s.values[v] }

func (s *Solver) newSlack() Variable {
	v := newVariable(Slack)
	s.known[v] = struct{}{}
	return v
}

func (s *Solver) newError() Variable {
	v := newVariable(Error)
	s.known[v] = struct{}{}
	return v
}

func (s *Solver) newDummy() Variable {
	v := newVariable(Dummy)
	s.known[v] = struct{}{}
	return v
}

func (s *Solver) isKnown(v Variable) bool {
	_, ok := s.known[v]
	return ok
}

// --- column index bookkeeping -------------------------------------------------

// noteAddedVariable is the solver-side half of Expression.AddExpression/
// SubstituteOut's notification contract (spec §4.1): variable has just
// appeared as a term in subject's row.
func (s *Solver) noteAddedVariable(variable, subject Variable) {
	set, ok := s.columns[variable]
	if !ok {
		set = &VariableSet{}
		s.columns[variable] = set
	}
	set.Add(subject)
	if variable.IsExternal() {
		s.externalParametric[variable] = struct{}{}
	}
}

// noteRemovedVariable is the counterpart of noteAddedVariable: variable
// has just disappeared from subject's row.
func (s *Solver) noteRemovedVariable(variable, subject Variable) {
	set, ok := s.columns[variable]
	if !ok {
		return
	}
	set.Remove(subject)
	if set.IsEmpty() {
		delete(s.columns, variable)
	}
}

// installRow makes subject the basic variable of expr, recording column
// entries for every variable expr mentions.
func (s *Solver) installRow(subject Variable, expr Expression) {
	s.rows[subject] = expr
	it := expr.Terms()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		s.noteAddedVariable(t.variable, subject)
	}
}

// removeRow drops subject's row, clearing its column entries, and
// returns the row's former expression.
func (s *Solver) removeRow(subject Variable) Expression {
	row, ok := s.rows[subject]
	if !ok {
		return Expression{}
	}
	it := row.Terms()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		s.noteRemovedVariable(t.variable, subject)
	}
	delete(s.rows, subject)
	return row
}

// substitute eliminates variable from every row that mentions it
// (replacing it with expr), from the objective row, and from the
// temporary artificial objective, using the column index to visit
// exactly the affected rows rather than scanning the whole tableau.
func (s *Solver) substitute(variable Variable, expr Expression) {
	if set, ok := s.columns[variable]; ok {
		for _, basic := range set.Slice() {
			row := s.rows[basic]
			row.SubstituteOut(variable, expr, basic, s)
			s.rows[basic] = row
			if !basic.IsExternal() && row.Constant() < 0 {
				s.infeasible = append(s.infeasible, basic)
			}
		}
	}
	delete(s.columns, variable)
	s.objective.SubstituteOut(variable, expr, zeroVariable, nil)
	s.artificial.SubstituteOut(variable, expr, zeroVariable, nil)
}

// --- constraint installation --------------------------------------------------

// AddConstraint installs c at Required strength.
func (s *Solver) AddConstraint(c Constraint) (ConstraintRef, error) {
	return s.addConstraint(Required, c, kindOrdinary, zeroVariable)
}

// AddConstraintWithPriority installs c at the given priority.
func (s *Solver) AddConstraintWithPriority(priority Priority, c Constraint) (ConstraintRef, error) {
	return s.addConstraint(priority, c, kindOrdinary, zeroVariable)
}

// AddVariableConstraint installs "subject relation expr" at priority,
// the literal (variable, relation, expression, weight) shape of spec
// §4.2.2/§6's add_constraint.
func (s *Solver) AddVariableConstraint(subject Variable, relation Relation, expr Expression, priority Priority) (ConstraintRef, error) {
	return s.addConstraint(priority, NewVariableConstraint(subject, relation, expr), kindOrdinary, zeroVariable)
}

func (s *Solver) addConstraint(priority Priority, input Constraint, kind constraintKind, target Variable) (ConstraintRef, error) {
	tag := Tag{priority: priority}
	c := input.clone()

	// Substitute any term whose variable is currently basic with that
	// variable's row definition before the constraint is normalized any
	// further (spec §4.2.2's "new_expression" walk).
	built := NewExpression(c.expr.constant)
	it := c.expr.Terms()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		if nearZero(t.coeff) {
			continue
		}
		if !s.isKnown(t.variable) {
			return ConstraintRef{}, fmt.Errorf("%w: %#x", ErrUnknownSymbol, uint64(t.variable))
		}
		if row, ok := s.rows[t.variable]; ok {
			built.AddExpression(row, t.coeff, zeroVariable, nil)
		} else {
			built.AddTerm(t.coeff, t.variable)
		}
	}
	c.expr = built

	switch c.relation {
	case LTE, GTE:
		coeff := 1.0
		if c.relation == GTE {
			coeff = -1.0
		}
		tag.marker = s.newSlack()
		c.expr.AddTerm(coeff, tag.marker)

		if priority < Required {
			tag.other = s.newError()
			c.expr.AddTerm(-coeff, tag.other)
			s.objective.AddTerm(priority.Val(), tag.other)
		}
	case EQ:
		if priority < Required {
			tag.marker = s.newError()
			tag.other = s.newError()

			c.expr.AddTerm(-1, tag.marker)
			c.expr.AddTerm(1, tag.other)

			s.objective.AddTerm(priority.Val(), tag.marker)
			s.objective.AddTerm(priority.Val(), tag.other)
		} else {
			tag.marker = s.newDummy()
			c.expr.AddTerm(1, tag.marker)
		}
	}

	if c.expr.constant < 0 {
		c.expr.Negate()
	}

	subject, err := s.findSubject(c, tag)
	if err != nil {
		s.logger.WithField("relation", c.relation.String()).Debug("add_constraint: required constraint is unsatisfiable, dropping")
		return ConstraintRef{}, nil
	}

	if subject.IsZero() {
		if err := s.optimizeAgainstRow(c); err != nil {
			s.logger.Debug("add_constraint: required constraint is unsatisfiable via artificial variable, dropping")
			return ConstraintRef{}, nil
		}
	} else {
		c.expr.NewSubject(subject)
		s.substitute(subject, c.expr)
		s.installRow(subject, c.expr)
	}

	ref := s.arena.insert(constraintRecord{kind: kind, tag: tag, target: target, prevConstant: s.values[target]})

	s.solveOrDefer()

	return ref, nil
}

// solveOrDefer runs the primal optimize + commit pair when auto-solve is
// on, otherwise marks the tableau as needing a future Resolve (spec
// §4.2.8/§4.2.10: mutations made while frozen defer commit).
func (s *Solver) solveOrDefer() {
	if !s.autoSolve {
		s.needsSolving = true
		return
	}
	if err := s.optimizeAgainst(&s.objective); err != nil {
		s.logger.WithError(err).Error("optimize: internal solver inconsistency")
	}
	s.commit()
}

// findSubject chooses a variable to pivot the normalized constraint's
// expression onto directly (returning zeroVariable means "no subject:
// install via an artificial variable instead"). The tie-break order is
// casso's: the first external (unrestricted, non-column in spirit since
// external variables are never basic before their first constraint)
// variable found scanning terms in reverse insertion order wins; failing
// that, the marker or the other error/slack variable wins if restricted
// with a negative coefficient; failing that, every remaining term must
// be a dummy and the constant must be ~0 or the constraint is
// unsatisfiable. This is an Open Question per spec §9; this tie-break is
// the one this module commits to and keeps stable.
func (s *Solver) findSubject(c Constraint, tag Tag) (Variable, error) {
	it := c.expr.ReverseTerms()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		if t.variable.IsExternal() {
			return t.variable, nil
		}
	}

	if tag.marker.IsRestricted() {
		if coeff := c.expr.Coefficient(tag.marker); coeff < 0 {
			return tag.marker, nil
		}
	}
	if tag.other.IsRestricted() {
		if coeff := c.expr.Coefficient(tag.other); coeff < 0 {
			return tag.other, nil
		}
	}

	it2 := c.expr.Terms()
	for {
		t, ok := it2.Next()
		if !ok {
			break
		}
		if !t.variable.IsDummy() {
			return zeroVariable, nil
		}
	}

	if !nearZero(c.expr.constant) {
		return zeroVariable, errUnsatisfiable
	}
	return tag.marker, nil
}

// optimizeAgainst runs primal simplex minimization of objective,
// pivoting until no pivotable variable has a negative coefficient in it
// (spec §4.2.4). It is used both for the persistent weighted-error
// objective and for the temporary phase-1 artificial objective.
func (s *Solver) optimizeAgainst(objective *Expression) error {
	for {
		entry := zeroVariable
		it := objective.Terms()
		for {
			t, ok := it.Next()
			if !ok {
				break
			}
			if !t.variable.IsPivotable() || t.coeff >= 0 {
				continue
			}
			entry = t.variable
			break
		}
		if entry.IsZero() {
			return nil
		}

		exit := zeroVariable
		ratio := math.MaxFloat64
		if set, ok := s.columns[entry]; ok {
			vit := set.Iterate()
			for {
				basic, ok := vit.Next()
				if !ok {
					break
				}
				if basic.IsExternal() {
					continue
				}
				row := s.rows[basic]
				coeff := row.Coefficient(entry)
				if coeff >= 0 {
					continue
				}
				r := -row.Constant() / coeff
				if r < ratio {
					ratio, exit = r, basic
				}
			}
		}

		if exit.IsZero() {
			s.logger.Debug("optimize: unbounded objective, stopping with current solution")
			return nil
		}

		row := s.removeRow(exit)
		row.ChangeSubject(exit, entry)
		s.substitute(entry, row)
		s.installRow(entry, row)
		s.optimizeCount++
	}
}

// optimizeAgainstRow installs c via a temporary artificial variable and
// minimizes it to (approximately) zero, the last resort when
// findSubject cannot choose a direct subject (spec §4.2.3).
func (s *Solver) optimizeAgainstRow(c Constraint) error {
	id := s.newSlack()
	s.installRow(id, c.expr.Clone())
	s.artificial = c.expr.Clone()

	if err := s.optimizeAgainst(&s.artificial); err != nil {
		return err
	}

	success := nearZero(s.artificial.constant)
	s.artificial = NewExpression(0)

	if row, ok := s.rows[id]; ok {
		s.removeRow(id)

		if row.Len() > 0 {
			entry := zeroVariable
			it := row.Terms()
			for {
				t, ok := it.Next()
				if !ok {
					break
				}
				if !t.variable.IsRestricted() {
					continue
				}
				entry = t.variable
				break
			}

			if entry.IsZero() {
				s.logger.WithError(errInternal).Error("optimize: artificial variable could not be pivoted out")
				return errUnsatisfiable
			}

			row.ChangeSubject(id, entry)
			s.substitute(entry, row)
			s.installRow(entry, row)
		}
	}

	// id may have leaked into other rows (including the objective) as a
	// side effect of the pivots above; it no longer belongs anywhere.
	if set, ok := s.columns[id]; ok {
		for _, basic := range set.Slice() {
			row := s.rows[basic]
			row.RemoveTerm(id)
			s.rows[basic] = row
			s.noteRemovedVariable(id, basic)
		}
	}
	s.objective.RemoveTerm(id)
	delete(s.columns, id)

	if !success {
		return errUnsatisfiable
	}
	return nil
}

// --- removal -------------------------------------------------------------

// RemoveConstraint drops a previously-added constraint. A stale or alien
// ref (already removed, or never returned by this solver) is a
// documented no-op.
func (s *Solver) RemoveConstraint(ref ConstraintRef) error {
	rec, ok := s.arena.remove(ref)
	if !ok {
		return nil
	}
	switch rec.kind {
	case kindStay:
		delete(s.stays, rec.target)
	case kindEdit:
		delete(s.edits, rec.target)
	}
	return s.removeConstraintRecord(rec.tag)
}

func (s *Solver) removeConstraintRecord(tag Tag) error {
	if tag.marker.IsError() {
		if row, ok := s.rows[tag.marker]; ok {
			s.objective.AddExpression(row, -tag.priority.Val(), zeroVariable, nil)
		} else {
			s.objective.AddTerm(-tag.priority.Val(), tag.marker)
		}
	}
	if tag.other.IsError() {
		if row, ok := s.rows[tag.other]; ok {
			s.objective.AddExpression(row, -tag.priority.Val(), zeroVariable, nil)
		} else {
			s.objective.AddTerm(-tag.priority.Val(), tag.other)
		}
	}

	if _, basic := s.rows[tag.marker]; !basic {
		var first, second, third Variable
		r1, r2 := math.MaxFloat64, math.MaxFloat64

		if set, ok := s.columns[tag.marker]; ok {
			it := set.Iterate()
			for {
				basicVar, ok := it.Next()
				if !ok {
					break
				}
				row := s.rows[basicVar]
				coeff := row.Coefficient(tag.marker)
				if nearZero(coeff) {
					continue
				}
				if basicVar.IsExternal() {
					third = basicVar
					continue
				}
				r := -row.Constant() / coeff
				switch {
				case coeff < 0 && r < r1:
					r1, first = r, basicVar
				case coeff >= 0 && r < r2:
					r2, second = r, basicVar
				}
			}
		}

		exit := third
		switch {
		case !first.IsZero():
			exit = first
		case !second.IsZero():
			exit = second
		}

		if !exit.IsZero() {
			row := s.removeRow(exit)
			row.ChangeSubject(exit, tag.marker)
			s.substitute(tag.marker, row)
		}
	} else {
		s.removeRow(tag.marker)
	}

	if !tag.other.IsZero() {
		s.removeRow(tag.other)
		delete(s.columns, tag.other)
	}

	s.solveOrDefer()
	return nil
}

// --- stays -----------------------------------------------------------------

// AddStayVariable anchors v at its current value, softly, at priority.
func (s *Solver) AddStayVariable(v Variable, priority Priority) (ConstraintRef, error) {
	c := NewConstraint(EQ, -s.values[v], v.T(1))
	ref, err := s.addConstraint(priority, c, kindStay, v)
	if err != nil {
		return ConstraintRef{}, err
	}
	if !ref.IsZero() {
		s.stays[v] = ref
	}
	return ref, nil
}

// HasStayVariable reports whether v currently has a stay constraint.
func (s *Solver) HasStayVariable(v Variable) bool {
	_, ok := s.stays[v]
	return ok
}

// RemoveStayVariable removes v's stay constraint. Missing is a logged
// no-op (spec §4.2.11/§7).
func (s *Solver) RemoveStayVariable(v Variable) error {
	ref, ok := s.stays[v]
	if !ok {
		s.logger.WithField("variable", v).Debug("remove_stay_variable: variable has no stay constraint")
		return nil
	}
	delete(s.stays, v)
	rec, ok := s.arena.remove(ref)
	if !ok {
		return nil
	}
	return s.removeConstraintRecord(rec.tag)
}

// --- edit phase --------------------------------------------------------------

// AddEditVariable marks v as editable via SuggestValue at priority. A
// Required edit anchors v exactly (via a dummy marker, like any other
// required equality) while still letting SuggestValue move it; spec §8
// scenario 4 exercises this directly, matching
// gtk_constraint_solver_add_edit_variable's lack of a strength
// restriction.
func (s *Solver) AddEditVariable(v Variable, priority Priority) (ConstraintRef, error) {
	c := NewConstraint(EQ, -s.values[v], v.T(1))
	ref, err := s.addConstraint(priority, c, kindEdit, v)
	if err != nil {
		return ConstraintRef{}, err
	}
	if !ref.IsZero() {
		s.edits[v] = ref
	}
	return ref, nil
}

// HasEditVariable reports whether v is currently editable.
func (s *Solver) HasEditVariable(v Variable) bool {
	_, ok := s.edits[v]
	return ok
}

// RemoveEditVariable drops v's edit registration. Missing is a logged
// no-op.
func (s *Solver) RemoveEditVariable(v Variable) error {
	ref, ok := s.edits[v]
	if !ok {
		s.logger.WithField("variable", v).Debug("remove_edit_variable: variable is not registered as editable")
		return nil
	}
	delete(s.edits, v)
	rec, ok := s.arena.remove(ref)
	if !ok {
		return nil
	}
	return s.removeConstraintRecord(rec.tag)
}

// BeginEdit opens an edit phase: SuggestValue is only legal between a
// BeginEdit and its matching EndEdit.
func (s *Solver) BeginEdit() {
	s.infeasible = s.infeasible[:0]
	s.inEditPhase = true
}

// EndEdit closes the edit phase: it resolves once, then drops every
// currently-registered edit variable (as RemoveEditVariable would).
func (s *Solver) EndEdit() {
	_ = s.Resolve()
	for v := range s.edits {
		_ = s.RemoveEditVariable(v)
	}
	s.inEditPhase = false
}

// InEditPhase reports whether the solver is between BeginEdit and
// EndEdit.
func (s *Solver) InEditPhase() bool { return s.inEditPhase }

// SuggestValue proposes a new value for edit variable v. Called outside
// an edit phase, or for a variable that was never registered via
// AddEditVariable, it is a logged no-op rather than an error (spec
// §4.2.11/§7).
func (s *Solver) SuggestValue(v Variable, value float64) error {
	ref, ok := s.edits[v]
	if !ok {
		s.logger.WithField("variable", v).Debug("suggest_value: variable is not registered as editable")
		return nil
	}
	if !s.inEditPhase {
		s.logger.WithField("variable", v).Debug("suggest_value: called outside an edit phase")
		return nil
	}
	rec, ok := s.arena.get(ref)
	if !ok {
		return nil
	}

	defer s.optimizeDualObjective()

	delta := value - rec.prevConstant
	rec.prevConstant = value
	s.arena.slots[ref.index] = rec

	tag := rec.tag

	// A required edit's marker is a dummy entering its row with +1, the
	// opposite sign of a soft edit's positive error variable, so the same
	// shift of the suggested value moves it the other way.
	if tag.marker.IsDummy() {
		delta = -delta
	}

	if row, ok := s.rows[tag.marker]; ok {
		row.constant -= delta
		if row.constant < 0 {
			s.infeasible = append(s.infeasible, tag.marker)
		}
		s.rows[tag.marker] = row
		return nil
	}
	if row, ok := s.rows[tag.other]; ok {
		row.constant += delta
		if row.constant < 0 {
			s.infeasible = append(s.infeasible, tag.other)
		}
		s.rows[tag.other] = row
		return nil
	}

	if set, ok := s.columns[tag.marker]; ok {
		for _, basic := range set.Slice() {
			row := s.rows[basic]
			coeff := row.Coefficient(tag.marker)
			if nearZero(coeff) {
				continue
			}
			row.constant += coeff * delta
			s.rows[basic] = row
			if row.constant >= 0 || basic.IsExternal() {
				continue
			}
			s.infeasible = append(s.infeasible, basic)
		}
	}
	return nil
}

// optimizeDualObjective repairs infeasible rows (a basic restricted
// variable whose row constant went negative) after an edit, via dual
// simplex (spec §4.2.5).
func (s *Solver) optimizeDualObjective() {
	for len(s.infeasible) > 0 {
		exit := s.infeasible[len(s.infeasible)-1]
		s.infeasible = s.infeasible[:len(s.infeasible)-1]

		row, ok := s.rows[exit]
		if !ok || row.Constant() >= 0 {
			continue
		}

		entry := zeroVariable
		ratio := math.MaxFloat64
		it := row.Terms()
		for {
			t, ok := it.Next()
			if !ok {
				break
			}
			if t.coeff <= 0 || t.variable.IsDummy() {
				continue
			}
			if s.objective.find(t.variable) == -1 {
				continue
			}
			r := s.objective.Coefficient(t.variable) / t.coeff
			if r < ratio {
				entry, ratio = t.variable, r
			}
		}

		if entry.IsZero() {
			s.logger.Error("dual optimize: no entry candidate found, solver state may be corrupt")
			continue
		}

		s.removeRow(exit)
		row.ChangeSubject(exit, entry)
		s.substitute(entry, row)
		s.installRow(entry, row)
	}
}

// Resolve runs dual optimize, commits external variable values, and
// clears the infeasible-row queue.
func (s *Solver) Resolve() error {
	s.optimizeDualObjective()
	s.commit()
	s.infeasible = s.infeasible[:0]
	return nil
}

// --- freeze/thaw and commit ----------------------------------------------

// Freeze suspends auto-solve; nested calls must be matched by as many
// Thaw calls.
func (s *Solver) Freeze() {
	s.freezeCount++
	s.autoSolve = false
}

// Thaw reverses one Freeze. Once the nesting count reaches zero,
// auto-solve resumes and a Resolve runs to catch up on deferred work.
func (s *Solver) Thaw() {
	if s.freezeCount > 0 {
		s.freezeCount--
	}
	if s.freezeCount == 0 {
		s.autoSolve = true
		_ = s.Resolve()
	}
}

// commit is the single point where caller-visible variable values
// change (spec §4.2.7).
func (s *Solver) commit() {
	for v := range s.externalParametric {
		if _, basic := s.rows[v]; !basic {
			s.values[v] = 0
		}
	}
	for subject, row := range s.rows {
		if subject.IsExternal() {
			s.values[subject] = row.Constant()
		}
	}
	s.needsSolving = false
}

// NeedsSolving reports whether a mutation has been deferred (while
// frozen) since the last commit.
func (s *Solver) NeedsSolving() bool { return s.needsSolving }

// Clear removes every constraint and resets internal counters, but
// keeps the Solver value itself alive and its previously-created
// Variables valid (spec §6).
func (s *Solver) Clear() {
	s.rows = make(map[Variable]Expression)
	s.columns = make(map[Variable]*VariableSet)
	s.externalParametric = make(map[Variable]struct{})
	s.objective = Expression{}
	s.artificial = Expression{}
	s.infeasible = nil
	s.arena.reset()
	s.edits = make(map[Variable]ConstraintRef)
	s.stays = make(map[Variable]ConstraintRef)
	s.inEditPhase = false
	s.autoSolve = true
	s.freezeCount = 0
	s.needsSolving = false
	s.optimizeCount = 0
}
