package signature

import (
	"context"
	"reflect"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"

	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	"github.com/drblury/mediatorflow/streams"
)

var (
	messageType    = reflect.TypeOf((*message.Message)(nil))
	contextType    = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
	streamsPkgPath = reflect.TypeOf(streams.Sink[struct{}]{}).PkgPath()
)

// Of derives a Signature from a Go function value. A leading context.Context
// parameter and a trailing error result belong to the call protocol, not the
// data contract, and are skipped. At most one non-error result is allowed.
func Of(owner, name string, fn any) (Signature, error) {
	if fn == nil {
		return Signature{}, errspkg.ErrFuncRequired
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return Signature{}, errspkg.ErrNotAFunction
	}

	sig := Signature{Identity: owner + "#" + name}

	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if i == 0 && in == contextType {
			continue
		}
		sig.Params = append(sig.Params, describe(in))
	}

	outs := make([]reflect.Type, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		outs = append(outs, t.Out(i))
	}
	if n := len(outs); n > 0 && outs[n-1] == errorType {
		outs = outs[:n-1]
	}

	switch len(outs) {
	case 0:
		sig.Return = Type{Kind: KindVoid, Name: "void"}
	case 1:
		sig.Return = describe(outs[0])
	default:
		return Signature{}, errspkg.ErrTooManyResults
	}

	return sig, nil
}

func describe(rt reflect.Type) Type {
	if rt == messageType {
		return Type{Kind: KindMessage, Name: rt.String()}
	}

	if rt.Kind() == reflect.Chan && rt.ChanDir() != reflect.SendDir {
		return Type{Kind: KindStream, Name: rt.String(), Args: []Type{describe(rt.Elem())}}
	}

	family, ok := streamsFamily(rt)
	if !ok {
		return Type{Kind: KindPayload, Name: rt.String()}
	}

	switch family {
	case "Builder":
		t := Type{Kind: KindStreamBuilder, Name: rt.String()}
		if out, ok := channelElem(rt, "Out"); ok {
			t.Args = []Type{out}
		}
		return t
	case "Flow", "FlowBuilder":
		kind := KindProcessor
		if family == "FlowBuilder" {
			kind = KindProcessorBuilder
		}
		t := Type{Kind: kind, Name: rt.String()}
		in, okIn := channelElem(rt, "In")
		out, okOut := channelElem(rt, "Out")
		if okIn && okOut {
			t.Args = []Type{in, out}
		}
		return t
	case "Sink":
		t := Type{Kind: KindSink, Name: rt.String()}
		if in, ok := channelElem(rt, "In"); ok {
			t.Args = []Type{in}
		}
		return t
	case "Promise":
		t := Type{Kind: KindPromise, Name: rt.String()}
		if m, ok := methodOf(rt, "Await"); ok && m.Type.NumOut() > 0 {
			t.Args = []Type{describe(m.Type.Out(0))}
		}
		return t
	default:
		return Type{Kind: KindPayload, Name: rt.String()}
	}
}

// streamsFamily reports whether rt is one of the streams package's declared
// type families and returns the family's base name without type arguments.
func streamsFamily(rt reflect.Type) (string, bool) {
	base := rt
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct || base.PkgPath() != streamsPkgPath {
		return "", false
	}
	name := base.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name, true
}

// channelElem resolves a generic type argument through the element type of a
// channel-returning method, which is how the streams families expose them.
func channelElem(rt reflect.Type, method string) (Type, bool) {
	m, ok := methodOf(rt, method)
	if !ok || m.Type.NumOut() != 1 || m.Type.Out(0).Kind() != reflect.Chan {
		return Type{}, false
	}
	return describe(m.Type.Out(0).Elem()), true
}

func methodOf(rt reflect.Type, name string) (reflect.Method, bool) {
	if rt.Kind() != reflect.Pointer {
		rt = reflect.PointerTo(rt)
	}
	return rt.MethodByName(name)
}
