package stack

import (
	"log/slog"
	"testing"

	"github.com/joshuapare/nodestack/alloc"
)

const benchDepth = 64

// benchPushPop fills the stack to benchDepth and drains it again per iteration.
func benchPushPop[A alloc.Allocator[Node[int]]](b *testing.B, s *Stack[int, A]) {
	b.Helper()
	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for i := range benchDepth {
			if err := s.Push(i); err != nil {
				b.Fatal(err)
			}
		}
		for range benchDepth {
			if _, err := s.Pop(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkStack_Plain measures push/pop with heap allocation per node.
func BenchmarkStack_Plain(b *testing.B) {
	benchPushPop(b, New[int]())
}

// BenchmarkStack_Arena measures push/pop with slab allocation; after the first
// round every node comes from the free list.
func BenchmarkStack_Arena(b *testing.B) {
	a, err := alloc.NewArena[Node[int]](alloc.ArenaOptions{SlabSize: benchDepth})
	if err != nil {
		b.Fatal(err)
	}
	benchPushPop(b, NewWith[int](a))
}

// BenchmarkStack_Pooled measures push/pop with sync.Pool recycling.
func BenchmarkStack_Pooled(b *testing.B) {
	benchPushPop(b, NewWith[int](alloc.NewPooled[Node[int]]()))
}

// BenchmarkStack_TrackedDisabled measures the tracking overhead when its
// records are filtered out by level.
func BenchmarkStack_TrackedDisabled(b *testing.B) {
	benchPushPop(b, NewTracked[int](alloc.TrackingOptions{Logger: slog.New(slog.DiscardHandler)}))
}
