package parse

import "errors"

var (
	ErrConfig     = errors.New("invalid parser config")
	ErrGeneration = errors.New("unknown parser generation")
)
