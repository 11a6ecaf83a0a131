package signature

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	"github.com/drblury/mediatorflow/streams"
)

func mustOf(t *testing.T, fn any) Signature {
	t.Helper()
	sig, err := Of("app", "mediator", fn)
	if err != nil {
		t.Fatalf("unexpected error describing function: %v", err)
	}
	return sig
}

func TestOfPlainFunction(t *testing.T) {
	sig := mustOf(t, func(order string) error { return nil })

	if sig.Identity != "app#mediator" {
		t.Fatalf("unexpected identity: %q", sig.Identity)
	}
	if sig.ParameterCount() != 1 {
		t.Fatalf("expected 1 parameter, got %d", sig.ParameterCount())
	}
	p, _ := sig.Param(0)
	if p.Kind != KindPayload || p.Name != "string" {
		t.Fatalf("unexpected parameter: %#v", p)
	}
	if !sig.Return.IsVoid() {
		t.Fatalf("expected void return, got %#v", sig.Return)
	}
}

func TestOfSkipsCallProtocol(t *testing.T) {
	sig := mustOf(t, func(ctx context.Context, msg *message.Message) (*message.Message, error) {
		return msg, nil
	})

	if sig.ParameterCount() != 1 {
		t.Fatalf("expected context to be skipped, got %d parameters", sig.ParameterCount())
	}
	p, _ := sig.Param(0)
	if !p.IsMessage() {
		t.Fatalf("expected message parameter, got %#v", p)
	}
	if !sig.Return.IsMessage() {
		t.Fatalf("expected message return, got %#v", sig.Return)
	}
}

func TestOfRawStreamReturn(t *testing.T) {
	sig := mustOf(t, func() <-chan *message.Message { return nil })

	if sig.Return.Kind != KindStream {
		t.Fatalf("expected stream return, got %#v", sig.Return)
	}
	arg, ok := sig.Return.Arg(0)
	if !ok || !arg.IsMessage() {
		t.Fatalf("expected message element, got %#v", arg)
	}
	if sig.Return.IsBuilder() {
		t.Fatal("raw channel must not be a builder type")
	}
}

func TestOfBuilderReturn(t *testing.T) {
	sig := mustOf(t, func() *streams.Builder[string] { return nil })

	if sig.Return.Kind != KindStreamBuilder || !sig.Return.IsBuilder() {
		t.Fatalf("expected stream builder return, got %#v", sig.Return)
	}
	arg, ok := sig.Return.Arg(0)
	if !ok || arg.Kind != KindPayload || arg.Name != "string" {
		t.Fatalf("unexpected element type: %#v", arg)
	}
}

func TestOfProcessorReturns(t *testing.T) {
	sig := mustOf(t, func() *streams.Flow[int, string] { return nil })
	if sig.Return.Kind != KindProcessor {
		t.Fatalf("expected processor return, got %#v", sig.Return)
	}
	in, _ := sig.Return.Arg(0)
	out, _ := sig.Return.Arg(1)
	if in.Name != "int" || out.Name != "string" {
		t.Fatalf("unexpected processor arguments: %#v / %#v", in, out)
	}

	sig = mustOf(t, func() *streams.FlowBuilder[*message.Message, *message.Message] { return nil })
	if sig.Return.Kind != KindProcessorBuilder || !sig.Return.IsBuilder() {
		t.Fatalf("expected processor builder return, got %#v", sig.Return)
	}
	in, _ = sig.Return.Arg(0)
	out, _ = sig.Return.Arg(1)
	if !in.IsMessage() || !out.IsMessage() {
		t.Fatalf("expected message arguments, got %#v / %#v", in, out)
	}
}

func TestOfSinkReturn(t *testing.T) {
	sig := mustOf(t, func() *streams.Sink[*message.Message] { return nil })

	if sig.Return.Kind != KindSink {
		t.Fatalf("expected sink return, got %#v", sig.Return)
	}
	arg, ok := sig.Return.Arg(0)
	if !ok || !arg.IsMessage() {
		t.Fatalf("expected message element, got %#v", arg)
	}
}

func TestOfPromiseReturn(t *testing.T) {
	sig := mustOf(t, func(order string) *streams.Promise[*message.Message] { return nil })

	if sig.Return.Kind != KindPromise {
		t.Fatalf("expected promise return, got %#v", sig.Return)
	}
	arg, ok := sig.Return.Arg(0)
	if !ok || !arg.IsMessage() {
		t.Fatalf("expected message value, got %#v", arg)
	}
}

func TestOfStreamParameter(t *testing.T) {
	sig := mustOf(t, func(in <-chan int) <-chan string { return nil })

	p, _ := sig.Param(0)
	if p.Kind != KindStream {
		t.Fatalf("expected stream parameter, got %#v", p)
	}
	arg, _ := p.Arg(0)
	if arg.Name != "int" {
		t.Fatalf("unexpected element type: %#v", arg)
	}
}

func TestOfRejectsInvalidFunctions(t *testing.T) {
	if _, err := Of("app", "nil", nil); !errors.Is(err, errspkg.ErrFuncRequired) {
		t.Fatalf("expected func required error, got %v", err)
	}
	if _, err := Of("app", "notfunc", 42); !errors.Is(err, errspkg.ErrNotAFunction) {
		t.Fatalf("expected not-a-function error, got %v", err)
	}
	if _, err := Of("app", "twovalues", func() (int, string) { return 0, "" }); !errors.Is(err, errspkg.ErrTooManyResults) {
		t.Fatalf("expected too-many-results error, got %v", err)
	}
}

func TestOfIsDeterministic(t *testing.T) {
	fn := func(ctx context.Context, in <-chan *message.Message) *streams.Builder[*message.Message] { return nil }

	first := mustOf(t, fn)
	second := mustOf(t, fn)

	if first.Identity != second.Identity || first.Return.Kind != second.Return.Kind {
		t.Fatalf("expected identical signatures, got %#v vs %#v", first, second)
	}
	if len(first.Params) != len(second.Params) {
		t.Fatalf("expected identical parameters, got %#v vs %#v", first.Params, second.Params)
	}
}
