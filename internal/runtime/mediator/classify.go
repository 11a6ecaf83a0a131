package mediator

import (
	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	signaturepkg "github.com/drblury/mediatorflow/internal/runtime/signature"
)

// Classify deduces the processing shape of a mediator signature from its
// bindings, validates the signature against that shape, and returns the
// immutable configuration the wiring runtime consumes. A signature either
// fully classifies or fails with a ConfigurationError; there is no partial
// success. The caller is responsible for rejecting signatures with neither
// binding before calling Classify.
func Classify(sig signaturepkg.Signature, incoming, outgoing *Binding) (*MediatorConfiguration, error) {
	m := &MediatorConfiguration{
		sig:         sig,
		production:  ProductionNone,
		consumption: ConsumptionNone,
		incoming:    cloneBinding(incoming),
		outgoing:    cloneBinding(outgoing),
	}

	switch {
	case incoming != nil && outgoing != nil:
		// Either a processor or a whole stream-to-stream mapping.
		if sig.Return.IsStream() && consumesStream(sig) {
			m.shape = ShapeStreamTransformer
		} else {
			m.shape = ShapeProcessor
		}
	case incoming != nil:
		m.shape = ShapeSubscriber
	default:
		m.shape = ShapePublisher
	}

	var err error
	switch m.shape {
	case ShapeSubscriber:
		err = m.validateSubscriber()
	case ShapePublisher:
		err = m.validatePublisher()
	case ShapeProcessor:
		err = m.validateProcessor()
	case ShapeStreamTransformer:
		err = m.validateStreamTransformer()
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func consumesStream(sig signaturepkg.Signature) bool {
	first, ok := sig.Param(0)
	return ok && first.IsStream()
}

// validateStreamTransformer handles signatures that declare the whole
// stream-to-stream mapping:
//
//	func(<-chan I) <-chan O
//	func(<-chan I) *streams.Builder[O]
//
// with I and O each either the envelope type or a bare payload.
func (m *MediatorConfiguration) validateStreamTransformer() error {
	if m.sig.ParameterCount() != 1 {
		return m.bothErr("one parameter expected")
	}

	ret, ok := m.sig.Return.Arg(0)
	if !ok {
		return m.outgoingErr("expected a type parameter for the returned stream")
	}
	m.production = streamProductionOf(ret)

	// The consumed element type comes from the parameter's own type
	// argument, never from the return type: the two stream element types
	// may differ in envelope-ness.
	param, _ := m.sig.Param(0)
	elem, ok := param.Arg(0)
	if !ok {
		return m.incomingErr("expected a type parameter for the consumed stream")
	}
	m.consumption = streamConsumptionOf(elem)

	m.usesBuilderTypes = m.sig.Return.IsBuilder()
	return nil
}

// validateProcessor handles the three return families of a both-bound
// mediator that works one item at a time:
//
//	func() *streams.Flow[I, O]              (also FlowBuilder)
//	func(I) <-chan O                        (also *streams.Builder[O])
//	func(I) O                               (also *streams.Promise[O])
func (m *MediatorConfiguration) validateProcessor() error {
	ret := m.sig.Return

	switch {
	case ret.IsProcessor():
		if m.sig.ParameterCount() != 0 {
			return m.bothErr("the method must not have parameters")
		}
		in, okIn := ret.Arg(0)
		out, okOut := ret.Arg(1)
		if !okIn || !okOut {
			return m.bothErr("expected 2 type parameters for the returned processor")
		}
		m.consumption = streamConsumptionOf(in)
		m.production = streamProductionOf(out)
		m.usesBuilderTypes = ret.IsBuilder()

	case ret.IsStream():
		if m.sig.ParameterCount() != 1 {
			return m.bothErr("one parameter expected")
		}
		elem, ok := ret.Arg(0)
		if !ok {
			return m.outgoingErr("expected a type parameter for the returned stream")
		}
		m.production = streamProductionOf(elem)
		// The single parameter is the stream element itself, so its bare
		// type decides the stream consumption flavour.
		param, _ := m.sig.Param(0)
		m.consumption = streamConsumptionOf(param)
		m.usesBuilderTypes = ret.IsBuilder()

	default:
		if ret.IsPromise() {
			elem, ok := ret.Arg(0)
			if !ok {
				return m.bothErr("expected a type parameter in the returned promise")
			}
			if elem.IsMessage() {
				m.production = ProductionPromiseOfMessage
			} else {
				m.production = ProductionPromiseOfPayload
			}
		} else if ret.IsMessage() {
			m.production = ProductionIndividualMessage
		} else {
			m.production = ProductionIndividualPayload
		}

		if m.sig.ParameterCount() != 1 {
			return m.bothErr("one parameter expected")
		}
		param, _ := m.sig.Param(0)
		if param.IsMessage() {
			m.consumption = ConsumptionMessage
		} else {
			m.consumption = ConsumptionPayload
		}
	}

	return nil
}

// validatePublisher handles outbound-only signatures:
//
//	func() <-chan O
//	func() *streams.Builder[O]
//	func() O                     O must not be void
//	func() *message.Message
//	func() *streams.Promise[O]
func (m *MediatorConfiguration) validatePublisher() error {
	ret := m.sig.Return

	if ret.IsVoid() {
		return m.outgoingErr("the method must not return void")
	}
	if m.sig.ParameterCount() != 0 {
		return m.outgoingErr("no parameters expected")
	}

	m.consumption = ConsumptionNone

	switch {
	case ret.Kind == signaturepkg.KindStream:
		m.production = streamProductionOf(argOrZero(ret))
	case ret.Kind == signaturepkg.KindStreamBuilder:
		m.production = streamProductionOf(argOrZero(ret))
		m.usesBuilderTypes = true
	case ret.IsMessage():
		m.production = ProductionIndividualMessage
	case ret.IsPromise():
		elem, ok := ret.Arg(0)
		if !ok {
			return m.outgoingErr("expected a type parameter for the returned promise")
		}
		if elem.IsMessage() {
			m.production = ProductionPromiseOfMessage
		} else {
			m.production = ProductionPromiseOfPayload
		}
	default:
		m.production = ProductionIndividualPayload
	}

	return nil
}

// validateSubscriber handles inbound-only signatures:
//
//	func() *streams.Sink[I]
//	func(I) *streams.Promise[O]
//	func(I)                      plain or void return
func (m *MediatorConfiguration) validateSubscriber() error {
	ret := m.sig.Return
	m.production = ProductionNone

	switch {
	case ret.IsSink():
		if m.sig.ParameterCount() != 0 {
			return m.incomingErr("when returning a subscriber, no parameters are expected")
		}
		elem, ok := ret.Arg(0)
		if !ok {
			return m.incomingErr("the returned subscriber must declare a type parameter")
		}
		m.consumption = streamConsumptionOf(elem)

	case ret.IsPromise():
		if m.sig.ParameterCount() != 1 {
			return m.incomingErr("when returning a promise, one parameter is expected")
		}
		param, _ := m.sig.Param(0)
		if param.IsMessage() {
			m.consumption = ConsumptionMessage
		} else {
			m.consumption = ConsumptionPayload
		}

	default:
		if m.sig.ParameterCount() != 1 {
			return m.incomingErr("unsupported signature")
		}
		param, _ := m.sig.Param(0)
		if param.IsMessage() {
			m.consumption = ConsumptionMessage
		} else {
			m.consumption = ConsumptionPayload
		}
	}

	return nil
}

func streamProductionOf(elem signaturepkg.Type) Production {
	if elem.IsMessage() {
		return ProductionStreamOfMessage
	}
	return ProductionStreamOfPayload
}

func streamConsumptionOf(elem signaturepkg.Type) Consumption {
	if elem.IsMessage() {
		return ConsumptionStreamOfMessage
	}
	return ConsumptionStreamOfPayload
}

func argOrZero(t signaturepkg.Type) signaturepkg.Type {
	arg, _ := t.Arg(0)
	return arg
}

func (m *MediatorConfiguration) incomingErr(reason string) error {
	return errspkg.NewConfigurationError(errspkg.BindingIncoming, m.sig.Identity, reason)
}

func (m *MediatorConfiguration) outgoingErr(reason string) error {
	return errspkg.NewConfigurationError(errspkg.BindingOutgoing, m.sig.Identity, reason)
}

func (m *MediatorConfiguration) bothErr(reason string) error {
	return errspkg.NewConfigurationError(errspkg.BindingIncomingAndOutgoing, m.sig.Identity, reason)
}
