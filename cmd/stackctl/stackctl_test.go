package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nodestack/alloc"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

// runCLI executes the root command with args and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	stdout = &out
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(resetFlags)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag to its default so commands can be executed
// repeatedly within one process.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
	stdout = os.Stdout
}

func TestPlayScenario_AllStrategies(t *testing.T) {
	for _, kind := range []string{"plain", "arena", "pooled"} {
		for _, track := range []bool{false, true} {
			name := kind
			if track {
				name += "+track"
			}
			t.Run(name, func(t *testing.T) {
				var logs bytes.Buffer
				cfg := strategyConfig{Kind: kind, Track: track, SlabSize: 2}
				b, err := buildStack[string](cfg, testLogger(&logs))
				require.NoError(t, err)

				report, err := playScenario(b, referenceScenario)
				require.NoError(t, err)
				assert.Len(t, report.Steps, len(referenceScenario))
				assert.Equal(t, 1, report.Remaining, "4 is still pushed at close")

				if !track {
					assert.Nil(t, report.Stats)
					assert.Empty(t, logs.String())
					return
				}
				require.NotNil(t, report.Stats)
				assert.Equal(t, alloc.Stats{Allocated: 5, Deallocated: 5}, *report.Stats)
				assert.Equal(t, 5, strings.Count(logs.String(), alloc.MsgAllocated))
				assert.Equal(t, 5, strings.Count(logs.String(), alloc.MsgDeallocated))
			})
		}
	}
}

func TestPlayScenario_Mismatch(t *testing.T) {
	b, err := buildStack[string](strategyConfig{Kind: "plain"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	_, err = playScenario(b, []scenarioOp{{"push", "a"}, {"pop", "b"}})
	require.ErrorIs(t, err, errScenarioMismatch)
}

func TestPlayScenario_ArenaTooSmall(t *testing.T) {
	cfg := strategyConfig{Kind: "arena", SlabSize: 1, MaxSlabs: 1}
	b, err := buildStack[string](cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	_, err = playScenario(b, referenceScenario)
	require.ErrorIs(t, err, alloc.ErrNoSpace)
}

func TestBuildStack_Errors(t *testing.T) {
	_, err := buildStack[int](strategyConfig{Kind: "mmap"}, slog.New(slog.DiscardHandler))
	require.ErrorContains(t, err, `unknown allocator "mmap"`)

	_, err = buildStack[int](strategyConfig{Kind: "arena", SlabSize: -1}, slog.New(slog.DiscardHandler))
	require.ErrorIs(t, err, alloc.ErrBadSlabSize)
}

func TestChurn_Balanced(t *testing.T) {
	cfg := strategyConfig{Kind: "arena", Track: true, SlabSize: 16, MaxSlabs: 2}
	b, err := buildStack[int](cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	report, err := churn(b, 5000, 3)
	require.NoError(t, err)

	assert.LessOrEqual(t, report.MaxDepth, 32, "arena holds at most 2 slabs of 16")
	assert.Positive(t, report.Failed, "push-biased churn should hit the slab limit")
	require.NotNil(t, report.Stats)
	assert.Equal(t, uint64(report.Pushes), report.Stats.Allocated)
	assert.True(t, report.Stats.Balanced())
	assert.Equal(t, report.Pushes-report.Pops, report.Remaining)
}

func TestChurn_Deterministic(t *testing.T) {
	run := func() churnReport {
		b, err := buildStack[int](strategyConfig{Kind: "plain"}, slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		r, err := churn(b, 1000, 99)
		require.NoError(t, err)
		return r
	}
	assert.Equal(t, run(), run())
}

func TestCLI_Run(t *testing.T) {
	out, errOut, err := runCLI(t, "run", "--alloc", "arena", "--slab-size", "2", "--track")
	require.NoError(t, err)

	assert.Contains(t, out, "closed with 1 node(s) remaining")
	assert.Contains(t, out, "allocated 5, deallocated 5, live 0")
	assert.Equal(t, 5, strings.Count(errOut, alloc.MsgAllocated))
	assert.Equal(t, 5, strings.Count(errOut, alloc.MsgDeallocated))
}

func TestCLI_RunJSON(t *testing.T) {
	out, _, err := runCLI(t, "run", "--json", "--quiet")
	require.NoError(t, err)

	var report runReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "plain", report.Allocator)
	assert.Equal(t, referenceScenario, report.Steps)
	assert.Equal(t, 1, report.Remaining)
}

func TestCLI_ChurnHumanized(t *testing.T) {
	out, _, err := runCLI(t, "churn", "--ops", "20000", "--alloc", "pooled", "--quiet=false")
	require.NoError(t, err)
	assert.Contains(t, out, "allocator:  pooled")
	assert.Regexp(t, `pushes:\s+\d{1,2},\d{3}`, out)
}

func TestCLI_Version(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stackctl dev")
}
