package streams

// Flow is simultaneously a stream sink and a stream source: items pushed
// into In come out of Out after apply runs. Closing the input side drains
// and closes the output side.
type Flow[I, O any] struct {
	in  chan I
	out chan O
}

// NewFlow starts a single-stage flow applying fn to every item.
func NewFlow[I, O any](fn func(I) O) *Flow[I, O] {
	f := &Flow[I, O]{in: make(chan I), out: make(chan O)}
	go func() {
		defer close(f.out)
		for item := range f.in {
			f.out <- fn(item)
		}
	}()
	return f
}

// In exposes the consuming end of the flow.
func (f *Flow[I, O]) In() chan<- I {
	return f.in
}

// Out exposes the producing end of the flow.
func (f *Flow[I, O]) Out() <-chan O {
	return f.out
}

// Close stops the flow. Pending items are still delivered downstream.
func (f *Flow[I, O]) Close() {
	close(f.in)
}

// FlowBuilder is the fluent wrapper around Flow. Then appends further
// stages to the producing side without disturbing the consuming end.
type FlowBuilder[I, O any] struct {
	in  chan<- I
	out <-chan O
}

// NewFlowBuilder starts a flow applying fn and wraps it for chaining.
func NewFlowBuilder[I, O any](fn func(I) O) *FlowBuilder[I, O] {
	f := NewFlow(fn)
	return &FlowBuilder[I, O]{in: f.in, out: f.out}
}

// In exposes the consuming end of the flow.
func (b *FlowBuilder[I, O]) In() chan<- I {
	return b.in
}

// Out exposes the producing end of the flow.
func (b *FlowBuilder[I, O]) Out() <-chan O {
	return b.out
}

// Then appends a post-processing stage to the producing side.
func (b *FlowBuilder[I, O]) Then(fn func(O) O) *FlowBuilder[I, O] {
	next := make(chan O)
	prev := b.out
	go func() {
		defer close(next)
		for item := range prev {
			next <- fn(item)
		}
	}()
	return &FlowBuilder[I, O]{in: b.in, out: next}
}

// Close stops the flow. Pending items are still delivered downstream.
func (b *FlowBuilder[I, O]) Close() {
	close(b.in)
}
