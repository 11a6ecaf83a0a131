// Package streams defines the declared types mediator functions use to
// participate in a message graph: raw streams are plain receive channels,
// Builder is the fluent wrapper around them, Flow is the stream-in/stream-out
// processor family, Sink is the consuming end, and Promise is a single
// asynchronous value. The signature classifier recognises these families by
// shape; the wiring runtime bridges them onto Watermill publishers and
// subscribers.
package streams

// Builder wraps a receive channel behind a fluent stage API. Each stage runs
// in its own goroutine and closes its output when the upstream closes.
type Builder[T any] struct {
	out <-chan T
}

// From wraps an existing channel as a Builder stream.
func From[T any](source <-chan T) *Builder[T] {
	return &Builder[T]{out: source}
}

// Emit returns a closed stream that yields the given items in order.
func Emit[T any](items ...T) *Builder[T] {
	ch := make(chan T, len(items))
	for _, item := range items {
		ch <- item
	}
	close(ch)
	return &Builder[T]{out: ch}
}

// Out exposes the raw receive channel behind the builder.
func (b *Builder[T]) Out() <-chan T {
	return b.out
}

// Map appends a stage applying fn to every item.
func (b *Builder[T]) Map(fn func(T) T) *Builder[T] {
	next := make(chan T)
	go func() {
		defer close(next)
		for item := range b.out {
			next <- fn(item)
		}
	}()
	return &Builder[T]{out: next}
}

// Filter appends a stage dropping items for which keep returns false.
func (b *Builder[T]) Filter(keep func(T) bool) *Builder[T] {
	next := make(chan T)
	go func() {
		defer close(next)
		for item := range b.out {
			if keep(item) {
				next <- item
			}
		}
	}()
	return &Builder[T]{out: next}
}

// Buffer appends a stage that decouples upstream and downstream with a
// buffered channel of the given size.
func (b *Builder[T]) Buffer(size int) *Builder[T] {
	next := make(chan T, size)
	go func() {
		defer close(next)
		for item := range b.out {
			next <- item
		}
	}()
	return &Builder[T]{out: next}
}

// Collect drains the stream into a slice. It blocks until the upstream
// closes.
func (b *Builder[T]) Collect() []T {
	var items []T
	for item := range b.out {
		items = append(items, item)
	}
	return items
}

// Transform maps a stream to a different element type.
func Transform[I, O any](b *Builder[I], fn func(I) O) *Builder[O] {
	next := make(chan O)
	go func() {
		defer close(next)
		for item := range b.Out() {
			next <- fn(item)
		}
	}()
	return &Builder[O]{out: next}
}
