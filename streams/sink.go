package streams

// Sink is the consuming end of a stream. Every item pushed into In is
// handed to the consume callback in a dedicated goroutine.
type Sink[T any] struct {
	in   chan T
	done chan struct{}
}

// NewSink starts a sink draining items into consume.
func NewSink[T any](consume func(T)) *Sink[T] {
	s := &Sink[T]{in: make(chan T), done: make(chan struct{})}
	go func() {
		defer close(s.done)
		for item := range s.in {
			consume(item)
		}
	}()
	return s
}

// In exposes the consuming channel.
func (s *Sink[T]) In() chan<- T {
	return s.in
}

// Close stops the sink after pending items are consumed.
func (s *Sink[T]) Close() {
	close(s.in)
}

// Done is closed once the sink has consumed all items after Close.
func (s *Sink[T]) Done() <-chan struct{} {
	return s.done
}
