// Package signature statically describes a mediator function's declared
// contract. Descriptors are derived once, at registration time, and carry a
// closed set of recognised type shapes so the classifier can match on tags
// instead of re-inspecting Go types.
package signature

// Kind tags the recognised families of declared types.
type Kind string

const (
	// KindPayload is any plain value with no wrapper semantics.
	KindPayload Kind = "payload"
	// KindMessage is the envelope type carrying metadata and an ack.
	KindMessage Kind = "message"
	// KindStream is a raw receive channel.
	KindStream Kind = "stream"
	// KindStreamBuilder is the fluent wrapper around a stream.
	KindStreamBuilder Kind = "stream-builder"
	// KindProcessor is a type that is both a stream sink and a stream source.
	KindProcessor Kind = "processor"
	// KindProcessorBuilder is the fluent wrapper around a processor.
	KindProcessorBuilder Kind = "processor-builder"
	// KindSink is the consuming end of a stream.
	KindSink Kind = "sink"
	// KindPromise is a single asynchronous value.
	KindPromise Kind = "promise"
	// KindVoid marks a function declaring no non-error result.
	KindVoid Kind = "void"
)

// Type describes one declared type: its family tag, a diagnostic name, and
// the element types of its generic arguments, in declaration order.
type Type struct {
	Kind Kind
	Name string
	Args []Type
}

// Arg returns the type argument at position i, if declared.
func (t Type) Arg(i int) (Type, bool) {
	if i < 0 || i >= len(t.Args) {
		return Type{}, false
	}
	return t.Args[i], true
}

// IsStream reports whether the type is a stream, raw or builder family.
func (t Type) IsStream() bool {
	return t.Kind == KindStream || t.Kind == KindStreamBuilder
}

// IsProcessor reports whether the type is a processor, raw or builder family.
func (t Type) IsProcessor() bool {
	return t.Kind == KindProcessor || t.Kind == KindProcessorBuilder
}

// IsBuilder reports whether the type belongs to the fluent builder family.
func (t Type) IsBuilder() bool {
	return t.Kind == KindStreamBuilder || t.Kind == KindProcessorBuilder
}

// IsMessage reports whether the type is the envelope type.
func (t Type) IsMessage() bool {
	return t.Kind == KindMessage
}

// IsPromise reports whether the type is an asynchronous single value.
func (t Type) IsPromise() bool {
	return t.Kind == KindPromise
}

// IsSink reports whether the type is the consuming end of a stream.
func (t Type) IsSink() bool {
	return t.Kind == KindSink
}

// IsVoid reports whether the function declared no non-error result.
func (t Type) IsVoid() bool {
	return t.Kind == KindVoid
}
