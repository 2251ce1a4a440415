package bem

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrInvalidArgument is the kind shared by every validation failure in this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingBlock is returned when a block name is missing or empty.
	ErrMissingBlock = fmt.Errorf("%w: required BEM block is missing or empty", ErrInvalidArgument)

	// ErrMissingElement is returned when an element name is missing or empty.
	ErrMissingElement = fmt.Errorf("%w: required BEM element is missing or empty", ErrInvalidArgument)

	// ErrInvalidSpec is returned when a serialized modifier spec cannot be decoded.
	ErrInvalidSpec = errors.New("invalid modifier spec")
)
