package tapes

import "errors"

var (
	ErrZeroSize = errors.New("tape size cannot be zero")
	ErrTooLarge = errors.New("tape size too big")
	ErrBadWidth = errors.New("unknown memory element size")
	ErrBadMode  = errors.New("unknown memory overflow mode")
)
