package alloc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats counts successful allocations and deallocations made through a strategy.
type Stats struct {
	Allocated   uint64
	Deallocated uint64
}

// Live returns the number of objects created but not yet destroyed.
func (s Stats) Live() int64 {
	return int64(s.Allocated) - int64(s.Deallocated)
}

// Balanced reports whether every allocated object has been destroyed.
func (s Stats) Balanced() bool {
	return s.Allocated == s.Deallocated
}

// String renders the counters with grouped digits, e.g.
// "allocated 12,000, deallocated 11,998, live 2".
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("allocated %d, deallocated %d, live %d", s.Allocated, s.Deallocated, s.Live())
}
