package session

import "errors"

var (
	// ErrNoProfile indicates an operation that requires a profile was
	// called before SetProfile.
	ErrNoProfile = errors.New("no organization profile set")

	// ErrUnknownQuestion indicates an answer was submitted against a
	// question that is not in the currently active list.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrInvalidAnswerValue indicates an answer value outside the
	// question's defined option values. The engine rejects rather than
	// coercing; silently accepting would corrupt the score.
	ErrInvalidAnswerValue = errors.New("invalid answer value")
)
