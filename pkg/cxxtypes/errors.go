package cxxtypes

import "errors"

var (
	// ErrInvalidArgument is returned when a setter is given a value
	// outside of its domain.
	ErrInvalidArgument = errors.New("cxxtypes: invalid argument")

	// ErrNotMember is returned when a scope is queried about a member
	// callable it does not declare.
	ErrNotMember = errors.New("cxxtypes: not a member")

	// ErrUnknownDistiller is returned when no distiller was registered
	// under the requested name.
	ErrUnknownDistiller = errors.New("cxxtypes: unknown distiller")
)

// EOF
