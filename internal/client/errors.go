package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name the client does not
	// implement.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong number or shape of
	// operands.
	ErrUsage = errors.New("invalid usage")
)
