package engine

import "errors"

var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrOutOfRangeValue    = errors.New("value out of range")
	ErrEmptyOutfit        = errors.New("outfit has no items")
)
