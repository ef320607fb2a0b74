package lib

import (
	"errors"
)

// Domain errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IsInvalidArgument reports whether err was caused by a rejected input value
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
