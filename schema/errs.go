package schema

import "errors"

var (
	ErrSchema     = errors.New("invalid schema")
	ErrUnknownRef = errors.New("unknown reference")
	ErrCycle      = errors.New("cyclic reference")
	ErrDuplicate  = errors.New("duplicate definition")
)
