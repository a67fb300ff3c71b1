package similarity

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid similarity request")
	ErrDimensionMismatch = errors.New("embedding dimensions do not match")
)
