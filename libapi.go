package mediatorflow

import (
	runtimepkg "github.com/drblury/mediatorflow/internal/runtime"
	errspkg "github.com/drblury/mediatorflow/internal/runtime/errors"
	jsoncodecpkg "github.com/drblury/mediatorflow/internal/runtime/jsoncodec"
	loggingpkg "github.com/drblury/mediatorflow/internal/runtime/logging"
	mediatorpkg "github.com/drblury/mediatorflow/internal/runtime/mediator"
	metadatapkg "github.com/drblury/mediatorflow/internal/runtime/metadata"
	signaturepkg "github.com/drblury/mediatorflow/internal/runtime/signature"
)

type (
	// Classification results and inputs.
	MediatorConfiguration = mediatorpkg.MediatorConfiguration
	Binding               = mediatorpkg.Binding
	Shape                 = mediatorpkg.Shape
	Production            = mediatorpkg.Production
	Consumption           = mediatorpkg.Consumption

	// Signature descriptors.
	Signature      = signaturepkg.Signature
	TypeDescriptor = signaturepkg.Type
	TypeKind       = signaturepkg.Kind

	// Startup pass.
	Catalog               = runtimepkg.Catalog
	CatalogOption         = runtimepkg.CatalogOption
	Definition            = runtimepkg.Definition
	Registration          = runtimepkg.Registration
	CatalogSnapshot       = runtimepkg.CatalogSnapshot
	MediatorSnapshot      = runtimepkg.MediatorSnapshot
	ClassificationMetrics = runtimepkg.ClassificationMetrics

	// Logging.
	LogFields     = loggingpkg.LogFields
	ServiceLogger = loggingpkg.ServiceLogger

	// Errors.
	ConfigurationError = errspkg.ConfigurationError
	BindingContext     = errspkg.BindingContext

	// Binding attributes.
	Metadata = metadatapkg.Metadata
)

const (
	ShapeSubscriber        = mediatorpkg.ShapeSubscriber
	ShapePublisher         = mediatorpkg.ShapePublisher
	ShapeProcessor         = mediatorpkg.ShapeProcessor
	ShapeStreamTransformer = mediatorpkg.ShapeStreamTransformer

	ProductionNone              = mediatorpkg.ProductionNone
	ProductionIndividualPayload = mediatorpkg.ProductionIndividualPayload
	ProductionIndividualMessage = mediatorpkg.ProductionIndividualMessage
	ProductionPromiseOfPayload  = mediatorpkg.ProductionPromiseOfPayload
	ProductionPromiseOfMessage  = mediatorpkg.ProductionPromiseOfMessage
	ProductionStreamOfPayload   = mediatorpkg.ProductionStreamOfPayload
	ProductionStreamOfMessage   = mediatorpkg.ProductionStreamOfMessage

	ConsumptionNone            = mediatorpkg.ConsumptionNone
	ConsumptionPayload         = mediatorpkg.ConsumptionPayload
	ConsumptionMessage         = mediatorpkg.ConsumptionMessage
	ConsumptionStreamOfPayload = mediatorpkg.ConsumptionStreamOfPayload
	ConsumptionStreamOfMessage = mediatorpkg.ConsumptionStreamOfMessage

	BindingIncoming            = errspkg.BindingIncoming
	BindingOutgoing            = errspkg.BindingOutgoing
	BindingIncomingAndOutgoing = errspkg.BindingIncomingAndOutgoing
)

var (
	// Classify validates a signature against its bindings and returns the
	// immutable configuration the wiring runtime consumes.
	Classify = mediatorpkg.Classify

	// DescribeFunc derives a Signature from a Go function value at
	// registration time.
	DescribeFunc = signaturepkg.Of

	NewCatalog                = runtimepkg.NewCatalog
	WithClassificationMetrics = runtimepkg.WithClassificationMetrics
	NewClassificationMetrics  = runtimepkg.NewClassificationMetrics

	NewSlogServiceLogger      = loggingpkg.NewSlogServiceLogger
	NewWatermillServiceLogger = loggingpkg.NewWatermillServiceLogger
	NewWatermillAdapter       = loggingpkg.NewWatermillAdapter
	NewNopServiceLogger       = loggingpkg.NewNopServiceLogger

	NewConfigurationError = errspkg.NewConfigurationError

	NewMetadata = metadatapkg.New

	Marshal       = jsoncodecpkg.Marshal
	MarshalIndent = jsoncodecpkg.MarshalIndent
	Unmarshal     = jsoncodecpkg.Unmarshal

	ErrBindingRequired     = errspkg.ErrBindingRequired
	ErrChannelNameRequired = errspkg.ErrChannelNameRequired
	ErrFuncRequired        = errspkg.ErrFuncRequired
	ErrNotAFunction        = errspkg.ErrNotAFunction
	ErrTooManyResults      = errspkg.ErrTooManyResults
)
