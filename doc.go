// Package mediatorflow classifies mediator functions for message-driven
// applications. A mediator is a plain Go function bound to one or two named
// channels; mediatorflow inspects the function's declared signature ahead of
// any invocation, deduces its processing shape (subscriber, publisher,
// processor, or stream transformer), and records exactly how each invocation
// consumes its input and produces its output. The resulting
// MediatorConfiguration is immutable and feeds the stream-wiring runtime
// that moves Watermill messages through the graph.
//
// # Shapes
//
// The shape follows from the bindings: an inbound binding alone makes a
// subscriber, an outbound binding alone makes a publisher, and both together
// make a processor, unless the signature maps a whole stream to a stream, in
// which case it is a stream transformer. Each shape accepts a small closed
// set of signatures; anything else fails classification with a
// ConfigurationError naming the offending function and the reason.
//
// # Declared types
//
// Mediator signatures are ordinary Go: raw streams are receive channels,
// the streams package supplies the fluent Builder family, the Flow processor
// family, Sink, and the Promise asynchronous value, and Watermill's
// *message.Message is the envelope carrying metadata and acknowledgement.
// Payload types need no wrapper at all.
//
// # Startup pass
//
// Applications queue Definitions on a Catalog and call Classify once during
// boot. The pass derives every signature, classifies it, logs the outcome,
// and aggregates all failures so a single run reports every mis-declared
// mediator. A failed pass aborts startup; a half-wired graph is worse than a
// failed boot. Prometheus counters and a JSON snapshot of the classified
// catalog are available for diagnostics.
package mediatorflow
