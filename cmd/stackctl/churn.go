package main

import (
	"math/rand"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/nodestack/alloc"
	"github.com/joshuapare/nodestack/internal/logger"
)

var (
	churnCfg  strategyConfig
	churnOps  int
	churnSeed int64
)

func init() {
	cmd := newChurnCmd()
	addStrategyFlags(cmd, &churnCfg)
	cmd.Flags().IntVar(&churnOps, "ops", 100000, "Number of random push/pop operations")
	cmd.Flags().Int64Var(&churnSeed, "seed", 1, "Random seed")
	rootCmd.AddCommand(cmd)
}

func newChurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "churn",
		Short: "Apply random push/pop traffic and report allocator activity",
		Long: `The churn command pushes and pops random integers, biased towards
pushing, then closes the stack and reports how many nodes went through the
allocator.

Example:
  stackctl churn --ops 1000000 --alloc arena --track
  stackctl churn --alloc pooled --seed 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChurn(churnCfg, churnOps, churnSeed)
		},
	}
}

type churnReport struct {
	Allocator string       `json:"allocator"`
	Pushes    int          `json:"pushes"`
	Pops      int          `json:"pops"`
	Failed    int          `json:"failedPushes"`
	MaxDepth  int          `json:"maxDepth"`
	Remaining int          `json:"remainingAtClose"`
	Stats     *alloc.Stats `json:"stats,omitempty"`
}

func runChurn(cfg strategyConfig, ops int, seed int64) error {
	b, err := buildStack[int](cfg, logger.L)
	if err != nil {
		return err
	}

	report, err := churn(b, ops, seed)
	if err != nil {
		return err
	}
	report.Allocator = cfg.Kind

	if jsonOut {
		return printJSON(report)
	}

	printInfo("allocator:  %s\n", report.Allocator)
	printInfo("pushes:     %s\n", humanize.Comma(int64(report.Pushes)))
	printInfo("pops:       %s\n", humanize.Comma(int64(report.Pops)))
	if report.Failed > 0 {
		printInfo("failed:     %s\n", humanize.Comma(int64(report.Failed)))
	}
	printInfo("max depth:  %s\n", humanize.Comma(int64(report.MaxDepth)))
	printInfo("at close:   %s\n", humanize.Comma(int64(report.Remaining)))
	if report.Stats != nil {
		printInfo("stats:      %s\n", report.Stats)
	}
	return nil
}

// churn drives b with ops random operations. Pushes rejected by a bounded
// allocator are counted, not treated as errors.
func churn(b builtStack[int], ops int, seed int64) (churnReport, error) {
	var report churnReport
	s := b.s
	rng := rand.New(rand.NewSource(seed))

	for range ops {
		if rng.Intn(5) < 3 {
			if err := s.Push(rng.Int()); err != nil {
				logger.Debug("push rejected", "depth", s.Len(), "error", err)
				report.Failed++
				continue
			}
			report.Pushes++
			report.MaxDepth = max(report.MaxDepth, s.Len())
			continue
		}
		if _, err := s.Pop(); err == nil {
			report.Pops++
		}
	}

	report.Remaining = s.Len()
	if err := s.Close(); err != nil {
		return report, err
	}
	if b.stats != nil {
		st := b.stats()
		report.Stats = &st
	}
	return report, nil
}
