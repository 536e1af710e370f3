package stack

import "github.com/joshuapare/nodestack/alloc"

// Node is a single chain element. Its fields are private to the stack; the
// type is exported only so strategies can be instantiated for it, e.g.
// alloc.NewArena[stack.Node[string]].
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Stack is a LIFO container whose nodes are created and destroyed by the
// allocation strategy A.
type Stack[T any, A alloc.Allocator[Node[T]]] struct {
	noCopy noCopy

	head      *Node[T]
	size      int
	allocator A
}

// New returns an empty stack backed by the plain heap strategy.
func New[T any]() *Stack[T, alloc.Plain[Node[T]]] {
	return &Stack[T, alloc.Plain[Node[T]]]{}
}

// NewWith returns an empty stack backed by the given strategy value.
func NewWith[T any, A alloc.Allocator[Node[T]]](a A) *Stack[T, A] {
	return &Stack[T, A]{allocator: a}
}

// NewTracked returns an empty stack whose nodes are heap-allocated and
// reported through a Tracking strategy.
func NewTracked[T any](opts alloc.TrackingOptions) *Stack[T, *alloc.Tracking[Node[T], alloc.Plain[Node[T]]]] {
	tr := alloc.NewTracking[Node[T]](alloc.Plain[Node[T]]{}, opts)
	return NewWith[T](tr)
}

// Push places v on top of the stack. If the strategy cannot create a node its
// error is returned as is and the stack is left unchanged.
func (s *Stack[T, A]) Push(v T) error {
	n, err := s.allocator.Create(Node[T]{value: v, next: s.head})
	if err != nil {
		return err
	}
	s.head = n
	s.size++
	return nil
}

// Pop removes the top element and returns its value.
func (s *Stack[T, A]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	// The value must be copied out before Destroy invalidates the node.
	old := s.head
	v := old.value
	s.head = old.next
	s.size--

	old.next = nil
	s.allocator.Destroy(old)
	return v, nil
}

// Top returns the top element without removing it.
func (s *Stack[T, A]) Top() (T, error) {
	if s.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.head.value, nil
}

// TopRef returns a pointer to the top element so it can be modified in place.
// The pointer is valid until the element is popped or the stack is closed.
func (s *Stack[T, A]) TopRef() (*T, error) {
	if s.head == nil {
		return nil, ErrEmpty
	}
	return &s.head.value, nil
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T, A]) Empty() bool {
	return s.head == nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T, A]) Len() int {
	return s.size
}

// Allocator returns the strategy the stack creates and destroys nodes with.
func (s *Stack[T, A]) Allocator() A {
	return s.allocator
}

// Close destroys every remaining node, top first, through the same path Pop
// uses. The stack is empty and still usable afterwards. Close always returns
// nil; the error result lets it satisfy io.Closer.
func (s *Stack[T, A]) Close() error {
	for !s.Empty() {
		_, _ = s.Pop()
	}
	return nil
}

// Move transfers the chain and the strategy to a new stack and leaves s empty.
// Nodes are not recreated, so no Create or Destroy calls are made. s keeps
// its strategy value as well; for pointer strategies both stacks then share
// it, which is safe as long as each node is destroyed by the stack that
// holds it.
func (s *Stack[T, A]) Move() *Stack[T, A] {
	dst := &Stack[T, A]{
		head:      s.head,
		size:      s.size,
		allocator: s.allocator,
	}
	s.head = nil
	s.size = 0
	return dst
}
