package alloc

// Plain allocates directly on the Go heap. It is stateless; the zero value is
// ready to use and every Plain[N] value is interchangeable with any other.
type Plain[N any] struct{}

// Create copies init into a freshly allocated N.
func (Plain[N]) Create(init N) (*N, error) {
	obj := new(N)
	*obj = init
	return obj, nil
}

// Destroy clears obj so it no longer keeps anything reachable. The storage is
// reclaimed by the garbage collector once the last reference is dropped.
func (Plain[N]) Destroy(obj *N) {
	var zero N
	*obj = zero
}
