package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free slot was available and growth was not permitted.
	ErrNoSpace = errors.New("alloc: no free slot and growth limit reached")

	// ErrNotLive indicates an attempt to destroy an object that is not currently
	// allocated by this strategy (double destroy or foreign pointer).
	ErrNotLive = errors.New("alloc: object is not live")

	// ErrBadSlabSize indicates an arena configured with a non-positive slab size.
	ErrBadSlabSize = errors.New("alloc: slab size must be positive")

	// ErrBadLimit indicates an arena configured with a negative slab limit.
	ErrBadLimit = errors.New("alloc: max slabs must not be negative")

	// ErrBadGrow indicates a request to grow by a non-positive number of slabs.
	ErrBadGrow = errors.New("alloc: grow count must be positive")
)
