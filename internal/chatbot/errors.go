package chatbot

import "errors"

// Domain-specific errors for the chatbot package.
var (
	ErrEmptyInput = errors.New("user input is empty")
	ErrEmptyReply = errors.New("upstream model returned an empty reply")
)
