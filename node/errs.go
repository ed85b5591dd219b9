package node

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrCycle           = errors.New("container cannot contain itself")
	ErrIndex           = errors.New("index out of range")
	ErrPath            = errors.New("bad path")
)
