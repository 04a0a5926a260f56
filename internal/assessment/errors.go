package assessment

import "errors"

var (
	// ErrNotAnswered is returned by Advance when the current question has no answer.
	ErrNotAnswered = errors.New("current question has not been answered")

	// ErrOptionOutOfRange is returned by SelectAnswer for an invalid option index.
	ErrOptionOutOfRange = errors.New("option index out of range")

	// ErrSessionComplete is returned by commands issued after the last advance.
	ErrSessionComplete = errors.New("session already complete")
)
