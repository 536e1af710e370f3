// Package alloc provides interchangeable allocation strategies for linked nodes.
//
// # Overview
//
// A strategy is any value satisfying Allocator[N]. Containers are parameterized
// by the strategy type itself, so the choice is resolved at compile time and
// calls go straight to the concrete Create/Destroy methods:
//
//	type Stack[T any, A alloc.Allocator[Node[T]]] struct { ... }
//
// # Allocator Interface
//
//   - Create(init): construct an N from init and hand back exclusive ownership
//   - Destroy(obj): release obj; obj must not be used or destroyed again
//
// Create never returns (nil, nil). A failed Create leaves nothing behind for
// the caller to clean up.
//
// # Implementations
//
// Plain: direct allocation on the Go heap
//
//   - Zero-size, stateless
//   - Destroy clears the object so it holds no references after release
//
// Tracking: observing wrapper around any other strategy
//
//   - Inner strategy is a type parameter, not an interface value
//   - One slog record per Create ("Object allocated at") and per Destroy
//     ("Object deallocated"), each carrying the object address
//   - Keeps Stats so allocation/deallocation balance can be checked
//
// Arena: slab allocator
//
//   - Bump-pointer allocation inside fixed-size slabs
//   - LIFO free list for slot reuse
//   - Bounded growth (MaxSlabs), reports ErrNoSpace when exhausted
//   - Detects double destroy and foreign pointers (panics with ErrNotLive)
//
// Pooled: sync.Pool-backed recycling
//
// # Usage Example
//
//	tr := alloc.NewTracking[node](alloc.Plain[node]{}, alloc.TrackingOptions{})
//	n, err := tr.Create(node{value: 42})
//	if err != nil {
//	    return err
//	}
//	tr.Destroy(n)
//	fmt.Println(tr.Stats()) // allocated 1, deallocated 1, live 0
//
// # Thread Safety
//
// Strategies are not thread-safe, with the exception of Pooled whose backing
// sync.Pool is. Callers must synchronize access externally.
//
// # Related Packages
//
//   - github.com/joshuapare/nodestack/stack: LIFO container built on these strategies
package alloc
