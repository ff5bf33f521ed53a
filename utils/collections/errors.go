package collections

import "errors"

var (
	ErrValueExisted     = errors.New("value existed")
	ErrValueNotExisted  = errors.New("value not existed")
	ErrNoSuchElement    = errors.New("no such element")
	ErrIllegalState     = errors.New("invalid operation state")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidBits      = errors.New("invalid table bits")
)
