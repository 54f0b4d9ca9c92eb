package service

import "errors"

var (
	// ErrOutOfRange means an input exceeds the limits the service accepts.
	ErrOutOfRange = errors.New("input out of range")
	// ErrInvalidRange means a term range or budget cannot be evaluated.
	ErrInvalidRange = errors.New("invalid term range")
)
