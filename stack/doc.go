// Package stack provides a LIFO container built on a singly-linked chain of
// nodes whose storage is managed by a pluggable allocation strategy.
//
// # Overview
//
// Stack[T, A] owns a chain of Node[T] values reachable from a single head.
// Every node is created through A.Create when it is pushed and released
// through A.Destroy when it is popped or when the stack is closed. The
// container never allocates or frees nodes any other way, which keeps the
// create/destroy pairing intact for strategies that observe it.
//
//	s := stack.New[string]()
//	defer s.Close()
//
//	_ = s.Push("1")
//	_ = s.Push("2")
//	v, _ := s.Pop() // "2"
//
// # Choosing a Strategy
//
// The strategy is a type parameter fixed at instantiation:
//
//	s := stack.New[string]()                                   // alloc.Plain
//	t := stack.NewTracked[string](alloc.TrackingOptions{})     // alloc.Tracking over Plain
//	a, _ := alloc.NewArena[stack.Node[string]](alloc.ArenaOptions{MaxSlabs: 4})
//	b := stack.NewWith[string](a)                              // *alloc.Arena
//
// # Ownership
//
// Each node is owned either by the head or by its predecessor's link, never
// both. A Stack must not be copied; it carries a noCopy marker that go vet
// reports on. Use Move to hand the chain to a new owner.
//
// Close is the stack's destructor: it destroys every remaining node through
// the strategy. Go has no deterministic destruction, so callers that care
// about the pairing (for example with a Tracking strategy) must Close.
//
// # Errors
//
// Pop, Top and TopRef on an empty stack return ErrEmpty. Push returns the
// strategy's Create error unchanged and leaves the stack as it was.
//
// # Thread Safety
//
// Stack is not thread-safe. Wrap it with external synchronization if it must
// be shared.
package stack
