// Package mediator classifies mediator function signatures into processing
// shapes and records how each invocation consumes its input and produces its
// output. Classification runs once per signature during the startup wiring
// pass; the resulting configuration is immutable and read repeatedly by the
// stream-wiring runtime for the lifetime of the process.
package mediator

// Shape is the structural category of a mediator's channel participation.
type Shape string

const (
	// ShapeSubscriber consumes only.
	ShapeSubscriber Shape = "subscriber"
	// ShapePublisher produces only.
	ShapePublisher Shape = "publisher"
	// ShapeProcessor consumes one item at a time and produces a single
	// item, an asynchronous value, or a stream.
	ShapeProcessor Shape = "processor"
	// ShapeStreamTransformer declares a whole stream-to-stream mapping as
	// its signature.
	ShapeStreamTransformer Shape = "stream-transformer"
)

// Production describes how a single invocation produces its output.
type Production string

const (
	ProductionNone              Production = "none"
	ProductionIndividualPayload Production = "individual-payload"
	ProductionIndividualMessage Production = "individual-message"
	ProductionPromiseOfPayload  Production = "promise-of-payload"
	ProductionPromiseOfMessage  Production = "promise-of-message"
	ProductionStreamOfPayload   Production = "stream-of-payload"
	ProductionStreamOfMessage   Production = "stream-of-message"
)

// Consumption describes how a single invocation consumes its input. There is
// no promise variant: consuming a single asynchronous value is not a
// supported input shape.
type Consumption string

const (
	ConsumptionNone            Consumption = "none"
	ConsumptionPayload         Consumption = "payload"
	ConsumptionMessage         Consumption = "message"
	ConsumptionStreamOfPayload Consumption = "stream-of-payload"
	ConsumptionStreamOfMessage Consumption = "stream-of-message"
)
