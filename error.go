package u8

import "errors"

var (
	ErrOutOfRange = errors.New("out of range")
	ErrIllFormed  = errors.New("ill-formed utf-8")
)
