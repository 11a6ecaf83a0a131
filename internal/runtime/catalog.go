// Package runtime hosts the startup classification pass: applications
// register mediator definitions, the catalog derives each signature and
// classifies it, and the resulting configurations are handed to the wiring
// runtime. A single failure aborts the whole pass; a half-wired graph is
// worse than a failed boot.
package runtime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	idspkg "github.com/drblury/mediatorflow/internal/runtime/ids"
	"github.com/drblury/mediatorflow/internal/runtime/jsoncodec"
	loggingpkg "github.com/drblury/mediatorflow/internal/runtime/logging"
	"github.com/drblury/mediatorflow/internal/runtime/mediator"
	signaturepkg "github.com/drblury/mediatorflow/internal/runtime/signature"
)

// Definition is one mediator as an application declares it: the function
// value plus its channel bindings. Owner and Name only feed diagnostics.
type Definition struct {
	Owner    string
	Name     string
	Func     any
	Incoming *mediator.Binding
	Outgoing *mediator.Binding
}

// Registration pairs a classified configuration with the definition it came
// from and a stable registration ID.
type Registration struct {
	ID            string
	Definition    Definition
	Configuration *mediator.MediatorConfiguration
}

// Catalog collects mediator definitions and classifies them in one startup
// pass.
type Catalog struct {
	mu            sync.Mutex
	logger        loggingpkg.ServiceLogger
	metrics       *ClassificationMetrics
	defs          []Definition
	registrations []Registration
}

// CatalogOption customises a Catalog.
type CatalogOption func(*Catalog)

// WithClassificationMetrics attaches prometheus counters to the catalog.
func WithClassificationMetrics(metrics *ClassificationMetrics) CatalogOption {
	return func(c *Catalog) {
		c.metrics = metrics
	}
}

// NewCatalog builds an empty catalog. A nil logger falls back to a no-op
// logger.
func NewCatalog(logger loggingpkg.ServiceLogger, opts ...CatalogOption) *Catalog {
	if logger == nil {
		logger = loggingpkg.NewNopServiceLogger()
	}
	c := &Catalog{logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add queues definitions for the next Classify call.
func (c *Catalog) Add(defs ...Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defs = append(c.defs, defs...)
}

// Classify runs the startup pass over every queued definition. All failures
// are collected and joined so the operator sees every offending mediator at
// once; on any failure no registrations are stored.
func (c *Catalog) Classify() ([]Registration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	regs := make([]Registration, 0, len(c.defs))

	for _, def := range c.defs {
		reg, err := c.classifyDefinition(def)
		if err != nil {
			errs = append(errs, err)
			if c.metrics != nil {
				c.metrics.observeFailure()
			}
			c.logger.Error("mediator classification failed", err, loggingpkg.LogFields{
				"mediator": def.Owner + "#" + def.Name,
			})
			continue
		}
		regs = append(regs, reg)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, reg := range regs {
		if c.metrics != nil {
			c.metrics.observeClassified(reg.Configuration.Shape())
		}
		c.logger.Info("mediator classified", loggingpkg.LogFields{
			"registration_id": reg.ID,
			"mediator":        reg.Configuration.Identity(),
			"shape":           string(reg.Configuration.Shape()),
			"production":      string(reg.Configuration.Production()),
			"consumption":     string(reg.Configuration.Consumption()),
		})
	}

	c.registrations = regs
	return append([]Registration(nil), regs...), nil
}

func (c *Catalog) classifyDefinition(def Definition) (Registration, error) {
	identity := def.Owner + "#" + def.Name

	// Rejecting unbound definitions is the caller side of the classifier
	// boundary, so it happens here, not in Classify.
	if def.Incoming == nil && def.Outgoing == nil {
		return Registration{}, fmt.Errorf("%w: %s", errspkg.ErrBindingRequired, identity)
	}
	for _, b := range []*mediator.Binding{def.Incoming, def.Outgoing} {
		if b != nil && b.Channel == "" {
			return Registration{}, fmt.Errorf("%w: %s", errspkg.ErrChannelNameRequired, identity)
		}
	}

	sig, err := signaturepkg.Of(def.Owner, def.Name, def.Func)
	if err != nil {
		return Registration{}, fmt.Errorf("%w: %s", err, identity)
	}

	cfg, err := mediator.Classify(sig, def.Incoming, def.Outgoing)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		ID:            idspkg.New(),
		Definition:    def,
		Configuration: cfg,
	}, nil
}

// Registrations returns a copy of the classified registrations.
func (c *Catalog) Registrations() []Registration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Registration(nil), c.registrations...)
}

// MediatorSnapshot is the JSON view of one classified mediator.
type MediatorSnapshot struct {
	ID               string `json:"id"`
	Identity         string `json:"identity"`
	Shape            string `json:"shape"`
	Production       string `json:"production"`
	Consumption      string `json:"consumption"`
	UsesBuilderTypes bool   `json:"uses_builder_types"`
	IncomingChannel  string `json:"incoming_channel,omitempty"`
	OutgoingChannel  string `json:"outgoing_channel,omitempty"`
	IncomingProvider string `json:"incoming_provider,omitempty"`
	OutgoingProvider string `json:"outgoing_provider,omitempty"`
}

// CatalogSnapshot is a point-in-time view of the whole catalog.
type CatalogSnapshot struct {
	Mediators   []MediatorSnapshot `json:"mediators"`
	CollectedAt time.Time          `json:"collected_at"`
}

// Snapshot returns the current catalog state for diagnostics.
func (c *Catalog) Snapshot() CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := CatalogSnapshot{
		Mediators:   make([]MediatorSnapshot, 0, len(c.registrations)),
		CollectedAt: time.Now(),
	}
	for _, reg := range c.registrations {
		cfg := reg.Configuration
		snap.Mediators = append(snap.Mediators, MediatorSnapshot{
			ID:               reg.ID,
			Identity:         cfg.Identity(),
			Shape:            string(cfg.Shape()),
			Production:       string(cfg.Production()),
			Consumption:      string(cfg.Consumption()),
			UsesBuilderTypes: cfg.UsesBuilderTypes(),
			IncomingChannel:  cfg.IncomingChannel(),
			OutgoingChannel:  cfg.OutgoingChannel(),
			IncomingProvider: cfg.IncomingProvider(),
			OutgoingProvider: cfg.OutgoingProvider(),
		})
	}
	return snap
}

// SnapshotJSON renders the snapshot as indented JSON.
func (c *Catalog) SnapshotJSON() ([]byte, error) {
	return jsoncodec.MarshalIndent(c.Snapshot(), "", "  ")
}
