package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/badros/cassowary"
	"github.com/badros/cassowary/vfl"
)

func init() {
	solveCmd.Flags().String("views", "", "path to a JSON object mapping view name to its initial size")
	solveCmd.Flags().String("metrics", "", "path to a JSON object mapping metric name to its value")
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve <file.vfl>",
	Short: "Solve a Visual Format Language file against named views and metrics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureLogging(cmd)
		return runSolve(cmd, args[0])
	},
}

// readFloatMap loads a JSON object of string -> number from path, or
// returns an empty map when path is "".
func readFloatMap(path string) (map[string]float64, error) {
	out := make(map[string]float64)
	if path == "" {
		return out, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return out, nil
}

// viewVars tracks the per-view, per-attribute Variable a VFL record
// refers to, minting one the first time an (view, attribute) pair is
// mentioned, the way a real layout engine would mint one constraint
// variable per widget attribute.
type viewVars struct {
	solver *cassowary.Solver
	sizes  map[string]float64
	vars   map[string]map[string]cassowary.Variable
}

func newViewVars(s *cassowary.Solver, sizes map[string]float64) *viewVars {
	return &viewVars{solver: s, sizes: sizes, vars: make(map[string]map[string]cassowary.Variable)}
}

func (vv *viewVars) get(view, attr string) cassowary.Variable {
	byAttr, ok := vv.vars[view]
	if !ok {
		byAttr = make(map[string]cassowary.Variable)
		vv.vars[view] = byAttr
	}
	v, ok := byAttr[attr]
	if ok {
		return v
	}
	initial := vv.sizes[view]
	v = vv.solver.CreateVariable(view, "."+attr, initial)
	byAttr[attr] = v
	return v
}

// views returns the view names touched so far, sorted, for stable
// output ordering.
func (vv *viewVars) views() []string {
	names := make([]string, 0, len(vv.vars))
	for name := range vv.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runSolve(cmd *cobra.Command, path string) error {
	sizes, err := readFloatMap(GetString(cmd, "views"))
	if err != nil {
		return err
	}
	metrics, err := readFloatMap(GetString(cmd, "metrics"))
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	knownViews := make(map[string]interface{}, len(sizes)+1)
	for name := range sizes {
		knownViews[name] = struct{}{}
	}
	knownViews["super"] = struct{}{}

	parser := vfl.New()
	parser.SetMetrics(metrics)
	parser.SetViews(knownViews)

	for i, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := parser.ParseLine(line); err != nil {
			return errors.Wrapf(err, "%s:%d", path, i+1)
		}
	}

	solver := cassowary.NewSolver(cassowary.WithLogger(log.StandardLogger()))
	vv := newViewVars(solver, sizes)
	vv.get("super", "start")

	for _, rec := range parser.Constraints() {
		if err := installRecord(solver, vv, rec); err != nil {
			return fmt.Errorf("%s: installing constraint: %w", path, err)
		}
	}

	for _, name := range vv.views() {
		for attr, v := range vv.vars[name] {
			if _, err := solver.AddStayVariable(v, cassowary.Weak); err != nil {
				log.WithFields(log.Fields{"view": name, "attr": attr}).Debug("stay rejected: ", err)
			}
		}
	}

	if err := solver.Resolve(); err != nil {
		return fmt.Errorf("%s: resolving: %w", path, err)
	}

	printResults(cmd, vv)

	if GetFlag(cmd, "dump") {
		fmt.Println(solver.Dump())
	}
	return nil
}

// installRecord maps one vfl.ConstraintRecord onto the solver, mirroring
// the "expr - subject = 0" normal form Variable.EQ/GTE/LTE build:
// view1.attr1 relation (multiplier * view2.attr2 + constant).
func installRecord(solver *cassowary.Solver, vv *viewVars, rec vfl.ConstraintRecord) error {
	v1 := vv.get(rec.View1, rec.Attr1)
	terms := []cassowary.Term{v1.T(1)}
	if rec.View2 != nil {
		attr2 := rec.Attr1
		if rec.Attr2 != nil {
			attr2 = *rec.Attr2
		}
		v2 := vv.get(*rec.View2, attr2)
		multiplier := rec.Multiplier
		if multiplier == 0 {
			multiplier = 1
		}
		terms = append(terms, v2.T(-multiplier))
	}
	constraint := cassowary.NewConstraint(cassowary.Relation(rec.Relation), -rec.Constant, terms...)
	_, err := solver.AddConstraintWithPriority(cassowary.Priority(rec.Strength), constraint)
	return err
}

func printResults(cmd *cobra.Command, vv *viewVars) {
	colorize := term.IsTerminal(int(os.Stdout.Fd()))
	for _, name := range vv.views() {
		attrs := vv.vars[name]
		attrNames := make([]string, 0, len(attrs))
		for attr := range attrs {
			attrNames = append(attrNames, attr)
		}
		sort.Strings(attrNames)
		for _, attr := range attrNames {
			v := attrs[attr]
			val := vv.solver.Value(v)
			if colorize {
				fmt.Printf("\x1b[1m%s.%s\x1b[0m = %g\n", name, attr, val)
			} else {
				fmt.Printf("%s.%s = %g\n", name, attr, val)
			}
		}
	}
}
