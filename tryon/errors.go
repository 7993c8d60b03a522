package tryon

import "errors"

// ErrSuperseded marks a result that resolved after a newer invocation had
// already started; the result is discarded and never shown.
var ErrSuperseded = errors.New("try-on invocation superseded by a newer one")

// ValidationError reports locally rejected input. It never reaches the
// network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// FetchError reports a relay or transport failure while obtaining the
// product image. Status carries the relay's status text.
type FetchError struct {
	Status string
}

func (e *FetchError) Error() string { return "failed to fetch product image: " + e.Status }

// PreconditionError reports an invocation made before its required inputs
// were present. A correctly gated caller never triggers it.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return e.Reason }

// GenerationError reports that the generation call produced no usable
// image, or failed outright. Reason is safe to show to the user; the
// underlying cause, if any, is reserved for logs.
type GenerationError struct {
	Reason string
	cause  error
}

func (e *GenerationError) Error() string { return e.Reason }

func (e *GenerationError) Unwrap() error { return e.cause }
