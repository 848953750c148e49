package shell

import "errors"

// Errors returned by session commands.
var (
	// ErrUnknownCommand indicates the first word of a line names no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage indicates a command received the wrong arguments.
	ErrUsage = errors.New("usage")

	// ErrInvalidSnapshot indicates a snapshot document could not be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrQuit is returned by the quit command to end Run.
	ErrQuit = errors.New("quit")
)
