package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown document type or processor name.
	ErrUnsupportedType = errors.New("unsupported type")

	// Processing Errors.

	// ErrValidation is the single kind of processing failure.
	// Every processor rejection wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent indicates a document with no content.
	ErrEmptyContent = fmt.Errorf("%w: document content is empty", ErrValidation)

	// ErrInvalidHTML indicates content carrying neither an <html> tag nor a doctype.
	ErrInvalidHTML = fmt.Errorf("%w: invalid HTML structure", ErrValidation)
)
