package errors

import (
	sterrors "errors"
	"fmt"
)

var (
	ErrBindingRequired     = sterrors.New("mediatorflow: at least one channel binding is required")
	ErrChannelNameRequired = sterrors.New("mediatorflow: channel binding requires a channel name")
	ErrFuncRequired        = sterrors.New("mediatorflow: mediator function is required")
	ErrNotAFunction        = sterrors.New("mediatorflow: mediator must be a function")
	ErrTooManyResults      = sterrors.New("mediatorflow: mediator functions declare at most one non-error result")
	ErrLoggerRequired      = sterrors.New("mediatorflow: logger is required")
)

// BindingContext names the binding declaration that triggered a
// configuration failure.
type BindingContext string

const (
	BindingIncoming            BindingContext = "incoming"
	BindingOutgoing            BindingContext = "outgoing"
	BindingIncomingAndOutgoing BindingContext = "incoming and outgoing"
)

// ConfigurationError reports a mediator signature that does not match any
// supported pattern for its deduced shape. It is raised once during the
// startup classification pass and is never retried: the declared signature
// itself is wrong, so the only fix is a code change.
type ConfigurationError struct {
	Context  BindingContext
	Identity string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mediatorflow: invalid mediator %s bound to %s: %s", e.Identity, e.Context, e.Reason)
}

// NewConfigurationError builds a ConfigurationError for the given binding
// context and diagnostic identity.
func NewConfigurationError(ctx BindingContext, identity, reason string) *ConfigurationError {
	return &ConfigurationError{Context: ctx, Identity: identity, Reason: reason}
}
