package cassowary_test

import (
	"testing"

	"github.com/badros/cassowary"
	"github.com/stretchr/testify/require"
)

func TestSimpleEquality(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()
	y := s.New()

	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, x.T(1), y.T(-1)))
	require.NoError(t, err)

	require.InDelta(t, s.Value(x), s.Value(y), 1e-8)
}

func TestStayVariablesHoldTheirValue(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()
	y := s.New()

	require.NoError(t, noErr(s.AddConstraint(x.EQ(5))))
	require.NoError(t, noErr(s.AddConstraint(y.EQ(10))))

	_, err := s.AddStayVariable(x, cassowary.Weak)
	require.NoError(t, err)
	_, err = s.AddStayVariable(y, cassowary.Weak)
	require.NoError(t, err)

	require.EqualValues(t, 5, s.Value(x))
	require.EqualValues(t, 10, s.Value(y))
}

// TestMiddleIsAverageOfLeftAndRight mirrors the canonical Cassowary paper
// example: middle = (left + right) / 2, edited to left=40, right=50
// should leave middle at 45.
func TestMiddleIsAverageOfLeftAndRight(t *testing.T) {
	s := cassowary.NewSolver()
	left := s.New()
	middle := s.New()
	right := s.New()

	// 2*middle - left - right == 0
	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, middle.T(2), left.T(-1), right.T(-1)))
	require.NoError(t, err)

	_, err = s.AddEditVariable(left, cassowary.Strong)
	require.NoError(t, err)
	_, err = s.AddEditVariable(right, cassowary.Strong)
	require.NoError(t, err)

	s.BeginEdit()
	require.NoError(t, s.SuggestValue(left, 40))
	require.NoError(t, s.SuggestValue(right, 50))
	require.NoError(t, s.Resolve())

	// checked while the edits still pin left and right: EndEdit removes
	// them, and nothing else anchors the three variables afterwards.
	require.EqualValues(t, 40, s.Value(left))
	require.EqualValues(t, 50, s.Value(right))
	require.InDelta(t, 45, s.Value(middle), 1e-6)
	s.EndEdit()
}

// TestPaperExampleLeftMiddleRight is spec §8 scenario 3, in full: three
// required constraints bound left/middle/right, then a weak stay on
// middle at 45 settles the remaining degree of freedom.
func TestPaperExampleLeftMiddleRight(t *testing.T) {
	s := cassowary.NewSolver()
	left := s.New()
	middle := s.New()
	right := s.New()

	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, middle.T(2), left.T(-1), right.T(-1)))
	require.NoError(t, err)
	_, err = s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, -10, right.T(1), left.T(-1)))
	require.NoError(t, err)
	_, err = s.AddConstraint(right.LTE(100))
	require.NoError(t, err)
	_, err = s.AddConstraint(left.GTE(0))
	require.NoError(t, err)

	require.GreaterOrEqual(t, s.Value(left), -1e-6)
	require.LessOrEqual(t, s.Value(right), 100+1e-6)

	_, err = s.AddEditVariable(middle, cassowary.Strong)
	require.NoError(t, err)
	s.BeginEdit()
	require.NoError(t, s.SuggestValue(middle, 45))
	require.NoError(t, s.Resolve())
	require.EqualValues(t, 45, s.Value(middle))

	// Anchor the edited value with a weak stay before the edit phase
	// ends and removes its (stronger) pin, so the remaining degree of
	// freedom among left/middle/right stays resolved at 45.
	_, err = s.AddStayVariable(middle, cassowary.Weak)
	require.NoError(t, err)
	s.EndEdit()
	require.NoError(t, s.Resolve())

	require.InDelta(t, 40, s.Value(left), 1e-6)
	require.InDelta(t, 45, s.Value(middle), 1e-6)
	require.InDelta(t, 50, s.Value(right), 1e-6)
}

// TestCassowaryUnstableSystem is spec §8 scenario 6: a required
// x<=y, y=x+3, plus conflicting weak stays on both x and y has two
// valid optima; the solver must be self-consistent about which one it
// picks, both within a run and across a Clear+re-add.
func TestCassowaryUnstableSystem(t *testing.T) {
	build := func() (s *cassowary.Solver, x, y cassowary.Variable) {
		s = cassowary.NewSolver()
		x, y = s.New(), s.New()
		_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.LTE, 0, x.T(1), y.T(-1)))
		require.NoError(t, err)
		_, err = s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, -3, y.T(1), x.T(-1)))
		require.NoError(t, err)
		_, err = s.AddConstraintWithPriority(cassowary.Weak, x.EQ(10))
		require.NoError(t, err)
		_, err = s.AddConstraintWithPriority(cassowary.Weak, y.EQ(10))
		require.NoError(t, err)
		require.NoError(t, s.Resolve())
		return s, x, y
	}

	valid := func(xv, yv float64) bool {
		return (nearlyEqual(xv, 10) && nearlyEqual(yv, 13)) || (nearlyEqual(xv, 7) && nearlyEqual(yv, 10))
	}

	s, x, y := build()
	require.True(t, valid(s.Value(x), s.Value(y)), "x=%g y=%g", s.Value(x), s.Value(y))
	firstX, firstY := s.Value(x), s.Value(y)

	s.Clear()
	x2, y2 := s.New(), s.New()
	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.LTE, 0, x2.T(1), y2.T(-1)))
	require.NoError(t, err)
	_, err = s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, -3, y2.T(1), x2.T(-1)))
	require.NoError(t, err)
	_, err = s.AddConstraintWithPriority(cassowary.Weak, x2.EQ(10))
	require.NoError(t, err)
	_, err = s.AddConstraintWithPriority(cassowary.Weak, y2.EQ(10))
	require.NoError(t, err)
	require.NoError(t, s.Resolve())

	require.InDelta(t, firstX, s.Value(x2), 1e-6)
	require.InDelta(t, firstY, s.Value(y2), 1e-6)
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}

func TestRequiredBeatsStrongBeatsMediumBeatsWeak(t *testing.T) {
	s := cassowary.NewSolver()
	a := s.New()

	_, err := s.AddConstraintWithPriority(cassowary.Weak, a.EQ(1))
	require.NoError(t, err)
	_, err = s.AddConstraintWithPriority(cassowary.Medium, a.EQ(2))
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Value(a))

	_, err = s.AddConstraintWithPriority(cassowary.Strong, a.EQ(3))
	require.NoError(t, err)
	require.EqualValues(t, 3, s.Value(a))

	_, err = s.AddConstraintWithPriority(cassowary.Required, a.EQ(10))
	require.NoError(t, err)
	require.EqualValues(t, 10, s.Value(a))
}

func TestEditRoundTrip(t *testing.T) {
	s := cassowary.NewSolver()
	a := s.New()

	_, err := s.AddConstraintWithPriority(cassowary.Required, a.EQ(2))
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Value(a))

	_, err = s.AddEditVariable(a, cassowary.Strong)
	require.NoError(t, err)

	s.BeginEdit()
	require.True(t, s.InEditPhase())
	require.NoError(t, s.SuggestValue(a, 10))
	s.EndEdit()
	require.False(t, s.InEditPhase())

	// the Required constraint still wins: a must stay at 2.
	require.EqualValues(t, 2, s.Value(a))
}

func TestEditPropagatesThroughLinkedVariable(t *testing.T) {
	s := cassowary.NewSolver()
	a := s.New()
	b := s.New()

	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, a.T(1), b.T(-1)))
	require.NoError(t, err)

	_, err = s.AddEditVariable(a, cassowary.Strong)
	require.NoError(t, err)

	s.BeginEdit()
	require.NoError(t, s.SuggestValue(a, 10))
	require.NoError(t, s.Resolve())

	require.EqualValues(t, 10, s.Value(a))
	require.InDelta(t, 10, s.Value(b), 1e-8)
	s.EndEdit()

	_, err = s.AddEditVariable(a, cassowary.Strong)
	require.NoError(t, err)
	s.BeginEdit()
	require.NoError(t, s.SuggestValue(a, 30))
	require.NoError(t, s.Resolve())

	require.EqualValues(t, 30, s.Value(a))
	require.InDelta(t, 30, s.Value(b), 1e-8)
	s.EndEdit()
}

// TestUnderconstrainedSystemIsSelfConsistent: a system with more weak
// stays than degrees of freedom does not have a uniquely defined answer,
// but whichever answer the solver settles on must satisfy the single
// required equality x + y == 0.
func TestUnderconstrainedSystemIsSelfConsistent(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()
	y := s.New()

	_, err := s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, x.T(1), y.T(1)))
	require.NoError(t, err)
	_, err = s.AddStayVariable(x, cassowary.Weak)
	require.NoError(t, err)
	_, err = s.AddStayVariable(y, cassowary.Weak)
	require.NoError(t, err)
	require.NoError(t, s.Resolve())

	require.InDelta(t, 0, s.Value(x)+s.Value(y), 1e-6)
}

func TestRemoveConstraintUndoesItsEffect(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()

	ref, err := s.AddConstraint(x.EQ(5))
	require.NoError(t, err)
	require.EqualValues(t, 5, s.Value(x))

	require.NoError(t, s.RemoveConstraint(ref))

	_, err = s.AddStayVariable(x, cassowary.Weak)
	require.NoError(t, err)
	require.NoError(t, s.Resolve())
	require.EqualValues(t, 5, s.Value(x))

	// a stale ref is a documented no-op, not an error.
	require.NoError(t, s.RemoveConstraint(ref))
}

func TestConstraintRefIsReusedAfterRemoval(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()

	ref1, err := s.AddConstraint(x.EQ(1))
	require.NoError(t, err)
	require.NoError(t, s.RemoveConstraint(ref1))

	ref2, err := s.AddConstraint(x.EQ(2))
	require.NoError(t, err)

	// the old ref must not alias the new constraint.
	require.NoError(t, s.RemoveConstraint(ref1))
	require.EqualValues(t, 2, s.Value(x))

	require.NoError(t, s.RemoveConstraint(ref2))
}

func TestClearResetsConstraintsButKeepsVariables(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()

	_, err := s.AddConstraint(x.EQ(7))
	require.NoError(t, err)
	require.EqualValues(t, 7, s.Value(x))

	s.Clear()

	_, err = s.AddConstraint(x.EQ(9))
	require.NoError(t, err)
	require.EqualValues(t, 9, s.Value(x))
}

func TestFreezeDefersSolvingUntilThaw(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()

	s.Freeze()
	_, err := s.AddConstraint(x.EQ(12))
	require.NoError(t, err)
	require.True(t, s.NeedsSolving())

	s.Thaw()
	require.False(t, s.NeedsSolving())
	require.EqualValues(t, 12, s.Value(x))
}

func TestNestedFreezeRequiresMatchingThaw(t *testing.T) {
	s := cassowary.NewSolver()
	x := s.New()

	s.Freeze()
	s.Freeze()
	_, err := s.AddConstraint(x.EQ(1))
	require.NoError(t, err)

	s.Thaw()
	require.True(t, s.NeedsSolving(), "one Thaw should not yet resume auto-solve with an outstanding Freeze")

	s.Thaw()
	require.False(t, s.NeedsSolving())
	require.EqualValues(t, 1, s.Value(x))
}

// TestEditAtRequiredStrength is spec §8 scenario 4: a required edit
// variable still anchors exactly, but SuggestValue can move it freely
// between resolves.
func TestEditAtRequiredStrength(t *testing.T) {
	s := cassowary.NewSolver()
	a := s.New()

	_, err := s.AddStayVariable(a, cassowary.Strong)
	require.NoError(t, err)

	_, err = s.AddEditVariable(a, cassowary.Required)
	require.NoError(t, err)

	s.BeginEdit()
	require.NoError(t, s.SuggestValue(a, 2))
	require.NoError(t, s.Resolve())
	require.EqualValues(t, 2, s.Value(a))

	require.NoError(t, s.SuggestValue(a, 10))
	require.NoError(t, s.Resolve())
	require.EqualValues(t, 10, s.Value(a))
	s.EndEdit()
}

func noErr(_ cassowary.ConstraintRef, err error) error { return err }

func BenchmarkAddConstraint(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := cassowary.NewSolver()
		l := s.New()
		m := s.New()
		r := s.New()
		a := cassowary.NewConstraint(cassowary.EQ, 0, l.T(1), r.T(1), m.T(-2))
		c := cassowary.NewConstraint(cassowary.GTE, -10, r.T(1), l.T(-1))
		s.AddConstraint(a)
		s.AddConstraint(c)
	}
}

func BenchmarkSuggestValue(b *testing.B) {
	s := cassowary.NewSolver()
	x := s.New()
	y := s.New()
	_, _ = s.AddConstraint(cassowary.NewConstraint(cassowary.EQ, 0, x.T(1), y.T(-1)))
	_, _ = s.AddEditVariable(x, cassowary.Strong)
	s.BeginEdit()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.SuggestValue(x, float64(i))
		_ = s.Resolve()
	}
}
