package drill

import "errors"

// Sentinel errors for the drill package.
var (
	ErrCannotStart = errors.New("drill: cannot start quiz, no questions match the filters")
	ErrNotActive   = errors.New("drill: no active quiz")
	ErrNoMoreHints = errors.New("drill: no more hints for this question")
	ErrUnknownMode = errors.New("drill: unknown mode")
)
