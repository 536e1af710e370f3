package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nodestack/alloc"
	"github.com/joshuapare/nodestack/stack"
)

// strategyConfig selects the allocation strategy a command instantiates its stack with.
type strategyConfig struct {
	Kind     string
	Track    bool
	SlabSize int
	MaxSlabs int
}

func addStrategyFlags(cmd *cobra.Command, cfg *strategyConfig) {
	cmd.Flags().StringVar(&cfg.Kind, "alloc", "plain", "Node allocator: plain, arena or pooled")
	cmd.Flags().BoolVar(&cfg.Track, "track", false, "Wrap the allocator with the tracking strategy")
	cmd.Flags().IntVar(&cfg.SlabSize, "slab-size", alloc.DefaultSlabSize, "Nodes per slab (arena only)")
	cmd.Flags().IntVar(&cfg.MaxSlabs, "max-slabs", 0, "Slab limit, 0 for unbounded (arena only)")
}

// lifo is the method set of *stack.Stack[T, A] the commands rely on. It lets
// one code path drive every strategy instantiation.
type lifo[T any] interface {
	Push(v T) error
	Pop() (T, error)
	Top() (T, error)
	Empty() bool
	Len() int
	Close() error
}

type builtStack[T any] struct {
	s     lifo[T]
	stats func() alloc.Stats // nil unless tracked
}

func buildStack[T any](cfg strategyConfig, l *slog.Logger) (builtStack[T], error) {
	l.Debug("building stack", "alloc", cfg.Kind, "track", cfg.Track)

	switch cfg.Kind {
	case "plain":
		return withTracking[T](cfg.Track, alloc.Plain[stack.Node[T]]{}, l), nil
	case "arena":
		a, err := alloc.NewArena[stack.Node[T]](alloc.ArenaOptions{
			SlabSize: cfg.SlabSize,
			MaxSlabs: cfg.MaxSlabs,
		})
		if err != nil {
			return builtStack[T]{}, fmt.Errorf("arena: %w", err)
		}
		return withTracking[T](cfg.Track, a, l), nil
	case "pooled":
		return withTracking[T](cfg.Track, alloc.NewPooled[stack.Node[T]](), l), nil
	default:
		return builtStack[T]{}, fmt.Errorf("unknown allocator %q (want plain, arena or pooled)", cfg.Kind)
	}
}

func withTracking[T any, A alloc.Allocator[stack.Node[T]]](track bool, a A, l *slog.Logger) builtStack[T] {
	if !track {
		return builtStack[T]{s: stack.NewWith[T](a)}
	}
	tr := alloc.NewTracking[stack.Node[T]](a, alloc.TrackingOptions{Logger: l})
	return builtStack[T]{s: stack.NewWith[T](tr), stats: tr.Stats}
}
