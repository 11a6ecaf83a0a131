package runtime

import (
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	"github.com/drblury/mediatorflow/internal/runtime/mediator"
	"github.com/drblury/mediatorflow/streams"
)

func TestCatalogClassifiesDefinitions(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Add(
		Definition{
			Owner:    "billing",
			Name:     "Consume",
			Func:     func(msg *message.Message) {},
			Incoming: &mediator.Binding{Channel: "orders"},
		},
		Definition{
			Owner:    "billing",
			Name:     "Emit",
			Func:     func() <-chan *message.Message { return nil },
			Outgoing: &mediator.Binding{Channel: "invoices"},
		},
		Definition{
			Owner:    "billing",
			Name:     "Transform",
			Func:     func(msgs <-chan *message.Message) <-chan *message.Message { return nil },
			Incoming: &mediator.Binding{Channel: "orders"},
			Outgoing: &mediator.Binding{Channel: "invoices"},
		},
	)

	regs, err := catalog.Classify()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regs) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(regs))
	}

	wantShapes := []mediator.Shape{
		mediator.ShapeSubscriber,
		mediator.ShapePublisher,
		mediator.ShapeStreamTransformer,
	}
	for i, want := range wantShapes {
		if got := regs[i].Configuration.Shape(); got != want {
			t.Errorf("registration %d: shape = %q, want %q", i, got, want)
		}
		if len(regs[i].ID) != 26 {
			t.Errorf("registration %d: expected ULID, got %q", i, regs[i].ID)
		}
	}
}

func TestCatalogRejectsUnboundDefinition(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Add(Definition{
		Owner: "billing",
		Name:  "Orphan",
		Func:  func(order string) {},
	})

	if _, err := catalog.Classify(); !errors.Is(err, errspkg.ErrBindingRequired) {
		t.Fatalf("expected binding required error, got %v", err)
	}
}

func TestCatalogRejectsEmptyChannelName(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Add(Definition{
		Owner:    "billing",
		Name:     "Consume",
		Func:     func(order string) {},
		Incoming: &mediator.Binding{},
	})

	if _, err := catalog.Classify(); !errors.Is(err, errspkg.ErrChannelNameRequired) {
		t.Fatalf("expected channel name error, got %v", err)
	}
}

func TestCatalogAggregatesAllFailures(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Add(
		Definition{
			Owner:    "billing",
			Name:     "BadPublisher",
			Func:     func() {},
			Outgoing: &mediator.Binding{Channel: "invoices"},
		},
		Definition{
			Owner:    "billing",
			Name:     "BadSubscriber",
			Func:     func() string { return "" },
			Incoming: &mediator.Binding{Channel: "orders"},
		},
		Definition{
			Owner:    "billing",
			Name:     "Fine",
			Func:     func(order string) {},
			Incoming: &mediator.Binding{Channel: "orders"},
		},
	)

	_, err := catalog.Classify()
	if err == nil {
		t.Fatal("expected aggregated error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "billing#BadPublisher") || !strings.Contains(msg, "billing#BadSubscriber") {
		t.Fatalf("expected both failures reported, got %q", msg)
	}

	// No partial success: nothing is registered.
	if regs := catalog.Registrations(); len(regs) != 0 {
		t.Fatalf("expected no registrations after failure, got %d", len(regs))
	}
}

func TestCatalogSnapshot(t *testing.T) {
	catalog := NewCatalog(nil)
	catalog.Add(Definition{
		Owner:    "billing",
		Name:     "Emit",
		Func:     func() *streams.Builder[*message.Message] { return nil },
		Outgoing: &mediator.Binding{Channel: "invoices", Provider: "kafka"},
	})

	if _, err := catalog.Classify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := catalog.Snapshot()
	if len(snap.Mediators) != 1 {
		t.Fatalf("expected 1 mediator in snapshot, got %d", len(snap.Mediators))
	}
	m := snap.Mediators[0]
	if m.Identity != "billing#Emit" || m.Shape != "publisher" {
		t.Fatalf("unexpected snapshot entry: %#v", m)
	}
	if m.Production != "stream-of-message" || !m.UsesBuilderTypes {
		t.Fatalf("unexpected production in snapshot: %#v", m)
	}
	if m.OutgoingChannel != "invoices" || m.OutgoingProvider != "kafka" {
		t.Fatalf("unexpected binding in snapshot: %#v", m)
	}
	if snap.CollectedAt.IsZero() {
		t.Fatal("expected collection timestamp")
	}

	data, err := catalog.SnapshotJSON()
	if err != nil {
		t.Fatalf("snapshot JSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"shape": "publisher"`) {
		t.Fatalf("unexpected snapshot JSON: %s", data)
	}
}

func TestCatalogMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewClassificationMetrics(registry)
	if err := metrics.Register(); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := metrics.Register(); err != nil {
		t.Fatalf("second register must be a no-op: %v", err)
	}

	catalog := NewCatalog(nil, WithClassificationMetrics(metrics))
	catalog.Add(
		Definition{
			Owner:    "billing",
			Name:     "Consume",
			Func:     func(order string) {},
			Incoming: &mediator.Binding{Channel: "orders"},
		},
		Definition{
			Owner:    "billing",
			Name:     "Process",
			Func:     func(order string) string { return order },
			Incoming: &mediator.Binding{Channel: "orders"},
			Outgoing: &mediator.Binding{Channel: "invoices"},
		},
	)

	if _, err := catalog.Classify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(metrics.classifiedTotal.WithLabelValues("subscriber")); got != 1 {
		t.Errorf("subscriber counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.classifiedTotal.WithLabelValues("processor")); got != 1 {
		t.Errorf("processor counter = %v, want 1", got)
	}

	failing := NewCatalog(nil, WithClassificationMetrics(metrics))
	failing.Add(Definition{
		Owner:    "billing",
		Name:     "Broken",
		Func:     func() {},
		Outgoing: &mediator.Binding{Channel: "invoices"},
	})
	if _, err := failing.Classify(); err == nil {
		t.Fatal("expected classification failure")
	}
	if got := testutil.ToFloat64(metrics.failuresTotal); got != 1 {
		t.Errorf("failure counter = %v, want 1", got)
	}
}
