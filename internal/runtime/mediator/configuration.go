package mediator

import (
	metadatapkg "github.com/drblury/mediatorflow/internal/runtime/metadata"
	signaturepkg "github.com/drblury/mediatorflow/internal/runtime/signature"
)

// Binding declares a mediator's attachment to a named channel. Provider and
// Attributes are opaque to the classifier; they are metadata for the wiring
// runtime, not inputs to shape deduction.
type Binding struct {
	Channel    string
	Provider   string
	Attributes metadatapkg.Metadata
}

func cloneBinding(b *Binding) *Binding {
	if b == nil {
		return nil
	}
	return &Binding{
		Channel:    b.Channel,
		Provider:   b.Provider,
		Attributes: b.Attributes.Clone(),
	}
}

// MediatorConfiguration is the validated result of classifying one mediator
// signature. It is constructed once at wiring time and never mutated; the
// stream-wiring runtime only reads it.
type MediatorConfiguration struct {
	sig              signaturepkg.Signature
	shape            Shape
	production       Production
	consumption      Consumption
	usesBuilderTypes bool
	incoming         *Binding
	outgoing         *Binding
}

// Shape returns the mediator's processing shape.
func (m *MediatorConfiguration) Shape() Shape {
	return m.shape
}

// Production returns how an invocation produces its output. It is
// ProductionNone exactly when the shape is ShapeSubscriber.
func (m *MediatorConfiguration) Production() Production {
	return m.production
}

// Consumption returns how an invocation consumes its input. It is
// ConsumptionNone exactly when the shape is ShapePublisher.
func (m *MediatorConfiguration) Consumption() Consumption {
	return m.consumption
}

// UsesBuilderTypes reports whether the signature declared the fluent builder
// family instead of the raw stream representation. The wiring runtime uses it
// to pick the right bridging code; the two families are otherwise equivalent.
func (m *MediatorConfiguration) UsesBuilderTypes() bool {
	return m.usesBuilderTypes
}

// Identity returns the signature's diagnostic identity.
func (m *MediatorConfiguration) Identity() string {
	return m.sig.Identity
}

// Signature returns the classified signature descriptor.
func (m *MediatorConfiguration) Signature() signaturepkg.Signature {
	return m.sig
}

// IncomingChannel returns the inbound channel name, or "" when unbound.
func (m *MediatorConfiguration) IncomingChannel() string {
	if m.incoming == nil {
		return ""
	}
	return m.incoming.Channel
}

// OutgoingChannel returns the outbound channel name, or "" when unbound.
func (m *MediatorConfiguration) OutgoingChannel() string {
	if m.outgoing == nil {
		return ""
	}
	return m.outgoing.Channel
}

// IncomingProvider returns the inbound binding's opaque provider tag.
func (m *MediatorConfiguration) IncomingProvider() string {
	if m.incoming == nil {
		return ""
	}
	return m.incoming.Provider
}

// OutgoingProvider returns the outbound binding's opaque provider tag.
func (m *MediatorConfiguration) OutgoingProvider() string {
	if m.outgoing == nil {
		return ""
	}
	return m.outgoing.Provider
}

// Incoming returns a copy of the inbound binding, if present.
func (m *MediatorConfiguration) Incoming() (Binding, bool) {
	if m.incoming == nil {
		return Binding{}, false
	}
	return *cloneBinding(m.incoming), true
}

// Outgoing returns a copy of the outbound binding, if present.
func (m *MediatorConfiguration) Outgoing() (Binding, bool) {
	if m.outgoing == nil {
		return Binding{}, false
	}
	return *cloneBinding(m.outgoing), true
}
