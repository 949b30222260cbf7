package template

import "errors"

var (
	ErrMissingKey         = errors.New("key not found in balance")
	ErrUnsupportedCommand = errors.New("unsupported template command")
	ErrBalanceValue       = errors.New("unexpected balance value")
	ErrRender             = errors.New("render error")
)
