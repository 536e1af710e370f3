package alloc

import (
	"sync"
	"sync/atomic"
)

// Pooled recycles object storage through a sync.Pool.
// Destroyed objects are cleared before they are returned to the pool, so a
// recycled object never exposes a previous value.
type Pooled[N any] struct {
	pool  sync.Pool
	count atomic.Int64
}

// NewPooled returns an empty Pooled strategy.
func NewPooled[N any]() *Pooled[N] {
	return &Pooled[N]{}
}

// Create takes storage from the pool, or allocates it when the pool is empty.
func (p *Pooled[N]) Create(init N) (*N, error) {
	var obj *N
	if v := p.pool.Get(); v != nil {
		var ok bool
		obj, ok = v.(*N)
		if !ok {
			panic("alloc: pool returned unexpected type")
		}
		p.count.Add(-1)
	} else {
		obj = new(N)
	}
	*obj = init
	return obj, nil
}

// Destroy clears obj and returns it to the pool.
func (p *Pooled[N]) Destroy(obj *N) {
	var zero N
	*obj = zero
	p.pool.Put(obj)
	p.count.Add(1)
}

// Count returns the number of objects handed back to the pool and not yet
// reused. The garbage collector may drop pooled objects at any time, so this
// is an upper bound on what the pool actually holds.
func (p *Pooled[N]) Count() int64 {
	return p.count.Load()
}
