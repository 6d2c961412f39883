package flatten

import "errors"

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrBadIndex   = errors.New("malformed index")
)
