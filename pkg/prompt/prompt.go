package prompt

import "strings"

const (
	// Question is shown before every read of user input.
	Question = "\nEnter your question (or type \"exit\" to quit): "

	// ExitCommand ends the session. It is matched case-insensitively.
	ExitCommand = "exit"
)

// IsExit reports whether line is the exit command.
// The line is compared as read, so surrounding whitespace makes it a prompt.
func IsExit(line string) bool {
	return strings.EqualFold(line, ExitCommand)
}
