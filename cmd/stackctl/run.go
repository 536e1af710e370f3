package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nodestack/alloc"
	"github.com/joshuapare/nodestack/internal/logger"
)

var runCfg strategyConfig

func init() {
	cmd := newRunCmd()
	addStrategyFlags(cmd, &runCfg)
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the reference push/pop scenario",
		Long: `The run command pushes and pops a fixed sequence of values, checks every
result, and then closes the stack while one value is still on it so the
allocator destroys it.

Example:
  stackctl run
  stackctl run --alloc arena --slab-size 2 --track
  stackctl run --alloc pooled --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReference(runCfg)
		},
	}
}

type scenarioOp struct {
	Op    string `json:"op"`
	Value string `json:"value,omitempty"`
}

// referenceScenario ends with "4" still pushed.
var referenceScenario = []scenarioOp{
	{"push", "1"},
	{"push", "2"},
	{"top", "2"},
	{"pop", "2"},
	{"pop", "1"},
	{"empty", "true"},
	{"push", "3"},
	{"pop", "3"},
	{"push", "4"},
	{"push", "5"},
	{"pop", "5"},
}

type runReport struct {
	Allocator string       `json:"allocator"`
	Tracked   bool         `json:"tracked"`
	Steps     []scenarioOp `json:"steps"`
	Remaining int          `json:"remainingAtClose"`
	Stats     *alloc.Stats `json:"stats,omitempty"`
}

var errScenarioMismatch = errors.New("scenario result mismatch")

func runReference(cfg strategyConfig) error {
	b, err := buildStack[string](cfg, logger.L)
	if err != nil {
		return err
	}

	report, err := playScenario(b, referenceScenario)
	if err != nil {
		return err
	}
	report.Allocator = cfg.Kind
	report.Tracked = cfg.Track

	if jsonOut {
		return printJSON(report)
	}

	for _, st := range report.Steps {
		printInfo("%-6s %s\n", st.Op, st.Value)
	}
	printInfo("closed with %d node(s) remaining\n", report.Remaining)
	if report.Stats != nil {
		printInfo("%s\n", report.Stats)
	}
	return nil
}

// playScenario executes ops against b, verifying each observed value, then
// closes the stack.
func playScenario(b builtStack[string], ops []scenarioOp) (runReport, error) {
	var report runReport
	s := b.s

	for i, op := range ops {
		var got string
		switch op.Op {
		case "push":
			if err := s.Push(op.Value); err != nil {
				return report, fmt.Errorf("step %d push %q: %w", i, op.Value, err)
			}
			got = op.Value
		case "pop":
			v, err := s.Pop()
			if err != nil {
				return report, fmt.Errorf("step %d pop: %w", i, err)
			}
			got = v
		case "top":
			v, err := s.Top()
			if err != nil {
				return report, fmt.Errorf("step %d top: %w", i, err)
			}
			got = v
		case "empty":
			got = strconv.FormatBool(s.Empty())
		default:
			return report, fmt.Errorf("step %d: unknown op %q", i, op.Op)
		}

		if got != op.Value {
			return report, fmt.Errorf("%w: step %d %s: got %q, want %q", errScenarioMismatch, i, op.Op, got, op.Value)
		}
		report.Steps = append(report.Steps, scenarioOp{Op: op.Op, Value: got})
	}

	report.Remaining = s.Len()
	if err := s.Close(); err != nil {
		return report, err
	}
	if b.stats != nil {
		st := b.stats()
		report.Stats = &st
		if !st.Balanced() {
			return report, fmt.Errorf("allocations not balanced after close: %s", st)
		}
	}
	return report, nil
}
