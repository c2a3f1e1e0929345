package cassowary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Statistics reports internal tableau counters, the Go analogue of the
// source's var_counter/slack_counter/optimize_count diagnostics (spec
// §6 "statistics() for debug").
type Statistics struct {
	Rows            int
	Columns         int
	Constraints     int
	StayConstraints int
	EditConstraints int
	InfeasibleRows  int
	OptimizeCount   int
}

// Statistics reports a snapshot of the solver's tableau size and pivot
// counters.
func (s *Solver) Statistics() Statistics {
	stats := Statistics{
		Rows:            len(s.rows),
		Columns:         len(s.columns),
		StayConstraints: len(s.stays),
		EditConstraints: len(s.edits),
		InfeasibleRows:  len(s.infeasible),
		OptimizeCount:   s.optimizeCount,
	}
	for _, slot := range s.arena.slots {
		if slot.active {
			stats.Constraints++
		}
	}
	return stats
}

// String renders a human-readable listing of the tableau's rows followed
// by the objective row ("to_string()" of spec §6); it does not print the
// column index. Rows are printed in a stable, sorted-by-id
// order so the output is reproducible across runs despite Go's
// randomized map iteration.
func (s *Solver) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "cassowary.Solver{rows=%d columns=%d constraints=%d optimizeCount=%d}\n",
		len(s.rows), len(s.columns), s.Statistics().Constraints, s.optimizeCount)

	rowVars := make([]Variable, 0, len(s.rows))
	for v := range s.rows {
		rowVars = append(rowVars, v)
	}
	sort.Slice(rowVars, func(i, j int) bool { return rowVars[i] < rowVars[j] })

	for _, subject := range rowVars {
		row := s.rows[subject]
		fmt.Fprintf(&b, "  %s = %s\n", s.describe(subject), s.describeExpr(row))
	}

	fmt.Fprintf(&b, "  objective = %s\n", s.describeExpr(s.objective))

	return b.String()
}

// describe renders a Variable as its debug name, if any, or a compact
// kind+id tag otherwise.
func (s *Solver) describe(v Variable) string {
	if name := s.names[v]; name != "" {
		return name
	}
	return fmt.Sprintf("%s#%d", v.Kind(), uint64(v)&variableIDMask)
}

func (s *Solver) describeExpr(e Expression) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g", e.Constant())
	it := e.Terms()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(&b, " + %g*%s", t.Coefficient(), s.describe(t.Variable()))
	}
	return b.String()
}

// Dump writes a deep, field-by-field spew of the solver's internal state
// (rows, columns, infeasible queue) useful for test failure output and
// the demo CLI's --dump flag; unlike String, it exposes raw internal
// structure rather than a readable equation listing.
func (s *Solver) Dump() string {
	cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisableMethods: true}
	return cfg.Sdump(s)
}
