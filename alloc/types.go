package alloc

// Allocator defines the capability used by containers to construct and
// destroy the objects they link together.
//
// Implementations:
//   - Plain: direct Go heap allocation
//   - Tracking: logging/counting wrapper around another Allocator
//   - Arena: slab allocator with a free list and bounded growth
//   - Pooled: sync.Pool-backed recycling
//
// Containers take the implementation as a type parameter, so swapping
// strategies changes no container code and adds no dynamic dispatch.
type Allocator[N any] interface {
	// Create constructs an N from init and returns exclusive ownership of it.
	// On success the returned pointer is never nil. On failure nothing was
	// constructed and the error describes why.
	Create(init N) (*N, error)

	// Destroy releases obj. The caller must not dereference or destroy obj
	// again. Strategies that can detect misuse panic rather than return.
	Destroy(obj *N)
}

// compile-time checks
var (
	_ Allocator[int] = Plain[int]{}
	_ Allocator[int] = (*Tracking[int, Plain[int]])(nil)
	_ Allocator[int] = (*Arena[int])(nil)
	_ Allocator[int] = (*Pooled[int])(nil)
)
