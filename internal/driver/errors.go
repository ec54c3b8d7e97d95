// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package driver

import (
	"errors"

	"github.com/pdiddy/disemvowel/internal/fileio"
)

// RequiredArgs is the exact number of positional arguments Run accepts.
const RequiredArgs = 2

// Fixed diagnostics printed at the process boundary.
const (
	MsgNotEnoughArgs = "Not enough arguments; exactly 2 arguments needed"
	MsgTooManyArgs   = "Too many arguments; exactly 2 arguments needed"
	MsgReadFailed    = "Could not read the file"
	MsgWriteFailed   = "Unable to write file"
)

// Exit codes returned by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBadUsage = 2
)

// ErrArgumentCount is matched by every *ArgumentCountError.
var ErrArgumentCount = errors.New("wrong number of arguments")

// ArgumentCountError reports a positional argument list of the wrong length.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	if e.Got < RequiredArgs {
		return MsgNotEnoughArgs
	}
	return MsgTooManyArgs
}

func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}

// CheckArgs returns an *ArgumentCountError unless args holds exactly
// RequiredArgs positional arguments.
func CheckArgs(args []string) error {
	if len(args) != RequiredArgs {
		return &ArgumentCountError{Got: len(args)}
	}
	return nil
}

// Message returns the diagnostic for err that the CLI writes to stderr.
// Read and write failures collapse to their fixed messages; other errors
// are reported as-is.
func Message(err error) string {
	var argErr *ArgumentCountError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &argErr):
		return argErr.Error()
	case errors.Is(err, fileio.ErrRead):
		return MsgReadFailed
	case errors.Is(err, fileio.ErrWrite):
		return MsgWriteFailed
	default:
		return err.Error()
	}
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrArgumentCount):
		return ExitBadUsage
	default:
		return ExitFailure
	}
}
