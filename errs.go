package flat

import "errors"

var (
	ErrBadEntity = errors.New("malformed entity")
	ErrBadResult = errors.New("malformed result")
)
