package alloc

import (
	"context"
	"fmt"
	"log/slog"
)

// Lifecycle record messages emitted by Tracking.
const (
	MsgAllocated   = "Object allocated at"
	MsgDeallocated = "Object deallocated"
)

// TrackingOptions configures a Tracking strategy.
type TrackingOptions struct {
	Logger *slog.Logger // Destination for lifecycle records. Default: slog.Default()
	Level  slog.Level   // Level of lifecycle records. Default: LevelInfo (the zero value)
}

// Tracking wraps an inner strategy and emits one lifecycle record around each
// Create and Destroy. The inner strategy is fixed by the type parameter A, so
// Tracking[N, Plain[N]] and Tracking[N, *Arena[N]] are distinct types with no
// interface indirection between them.
//
// Tracking also counts successful creates and destroys; see Stats.
type Tracking[N any, A Allocator[N]] struct {
	inner A
	log   *slog.Logger
	level slog.Level
	stats Stats
}

// NewTracking returns a Tracking strategy delegating to inner.
//
//	tr := alloc.NewTracking[node](alloc.Plain[node]{}, alloc.TrackingOptions{Logger: l})
func NewTracking[N any, A Allocator[N]](inner A, opts TrackingOptions) *Tracking[N, A] {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Tracking[N, A]{
		inner: inner,
		log:   l,
		level: opts.Level,
	}
}

// Create delegates to the inner strategy and records the new object's address.
// Failed creates are neither logged nor counted.
func (t *Tracking[N, A]) Create(init N) (*N, error) {
	obj, err := t.inner.Create(init)
	if err != nil {
		return nil, err
	}
	t.stats.Allocated++
	t.emit(MsgAllocated, obj)
	return obj, nil
}

// Destroy records the object's address, then hands it to the inner strategy.
func (t *Tracking[N, A]) Destroy(obj *N) {
	t.emit(MsgDeallocated, obj)
	t.stats.Deallocated++
	t.inner.Destroy(obj)
}

// Stats returns a snapshot of the allocation counters.
func (t *Tracking[N, A]) Stats() Stats {
	return t.stats
}

// Inner returns the wrapped strategy.
func (t *Tracking[N, A]) Inner() A {
	return t.inner
}

func (t *Tracking[N, A]) emit(msg string, obj *N) {
	ctx := context.Background()
	if !t.log.Enabled(ctx, t.level) {
		return
	}
	t.log.Log(ctx, t.level, msg, slog.String("addr", fmt.Sprintf("%p", obj)))
}
