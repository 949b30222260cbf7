package ir

import "errors"

var (
	ErrValue = errors.New("unsupported value")
)
