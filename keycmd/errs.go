package keycmd

import "errors"

var (
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrCommandExists      = errors.New("command exists")
	ErrTypeConversion     = errors.New("cannot convert value")
	ErrTypeMismatch       = errors.New("unexpected value type")
	ErrIndexOutOfRange    = errors.New("index out of range")
)
