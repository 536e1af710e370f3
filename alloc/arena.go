package alloc

import "fmt"

// DefaultSlabSize is the number of slots per slab when ArenaOptions.SlabSize is zero.
const DefaultSlabSize = 64

// ArenaOptions configures an Arena.
type ArenaOptions struct {
	SlabSize int // Slots per slab. Default: DefaultSlabSize
	MaxSlabs int // Upper bound on slabs. 0 means unbounded
}

// Arena hands out objects from fixed-size slabs.
//
// Allocation order:
//  1. Reuse the most recently destroyed slot (LIFO free list)
//  2. Bump the pointer inside the current slab
//  3. Grow by one slab, unless MaxSlabs has been reached (ErrNoSpace)
//
// Slabs are never moved or released while the Arena is alive, so pointers
// returned by Create stay valid until they are passed to Destroy.
type Arena[N any] struct {
	slabs    [][]N
	slabSize int
	maxSlabs int

	// cur and next form the bump pointer: slot next of slab cur.
	cur  int
	next int

	free []*N
	live map[*N]struct{}
}

// NewArena creates an empty Arena. No slab is allocated until the first
// Create or an explicit GrowBySlabs.
func NewArena[N any](opts ArenaOptions) (*Arena[N], error) {
	size := opts.SlabSize
	if size == 0 {
		size = DefaultSlabSize
	}
	if size < 0 {
		return nil, ErrBadSlabSize
	}
	if opts.MaxSlabs < 0 {
		return nil, ErrBadLimit
	}
	return &Arena[N]{
		slabSize: size,
		maxSlabs: opts.MaxSlabs,
		live:     make(map[*N]struct{}),
	}, nil
}

// Create places init in a free slot.
func (a *Arena[N]) Create(init N) (*N, error) {
	var obj *N
	if n := len(a.free); n > 0 {
		obj = a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
	} else {
		for a.cur < len(a.slabs) && a.next == a.slabSize {
			a.cur++
			a.next = 0
		}
		if a.cur == len(a.slabs) {
			if err := a.GrowBySlabs(1); err != nil {
				return nil, err
			}
		}
		obj = &a.slabs[a.cur][a.next]
		a.next++
	}

	*obj = init
	a.live[obj] = struct{}{}
	return obj, nil
}

// Destroy clears obj and puts its slot on the free list.
// It panics with ErrNotLive if obj is not currently allocated from this Arena.
func (a *Arena[N]) Destroy(obj *N) {
	if _, ok := a.live[obj]; !ok {
		panic(fmt.Errorf("%w: %p", ErrNotLive, obj))
	}
	delete(a.live, obj)

	var zero N
	*obj = zero
	a.free = append(a.free, obj)
}

// GrowBySlabs adds n empty slabs. Growth is all-or-nothing: if the result
// would exceed MaxSlabs nothing is added and ErrNoSpace is returned.
func (a *Arena[N]) GrowBySlabs(n int) error {
	if n <= 0 {
		return ErrBadGrow
	}
	if a.maxSlabs > 0 && len(a.slabs)+n > a.maxSlabs {
		return fmt.Errorf("%w: have %d slabs, limit %d", ErrNoSpace, len(a.slabs), a.maxSlabs)
	}
	for range n {
		a.slabs = append(a.slabs, make([]N, a.slabSize))
	}
	return nil
}

// Live returns the number of objects currently allocated.
func (a *Arena[N]) Live() int { return len(a.live) }

// Free returns the number of destroyed slots waiting for reuse.
func (a *Arena[N]) Free() int { return len(a.free) }

// Slabs returns the number of slabs allocated so far.
func (a *Arena[N]) Slabs() int { return len(a.slabs) }

// Capacity returns the total number of slots across all slabs.
func (a *Arena[N]) Capacity() int { return len(a.slabs) * a.slabSize }
