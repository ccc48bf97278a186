package display

import (
	"fmt"
	"io"
)

// Console writes the session's user-facing messages.
// Status and results go to out, failures go to errOut.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

// NewConsole returns a Console writing to out and errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Thinking announces that a request is outstanding.
func (c *Console) Thinking() error {
	_, err := fmt.Fprintln(c.out, "\nThinking...")
	return err
}

// Response prints a completion verbatim after the response label.
func (c *Console) Response(text string) error {
	_, err := fmt.Fprintln(c.out, "\nResponse:", text)
	return err
}

// Goodbye prints the farewell shown when the session ends normally.
func (c *Console) Goodbye() error {
	_, err := fmt.Fprintln(c.out, "Goodbye!")
	return err
}

// Error reports the failure that ended the session.
func (c *Console) Error(cause error) {
	fmt.Fprintln(c.errOut, "Error:", cause)
}
