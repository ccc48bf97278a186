package display

import (
	"bytes"
	"errors"
	"testing"
)

func TestConsole(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c *Console)
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "Thinking",
			write:   func(c *Console) { c.Thinking() },
			wantOut: "\nThinking...\n",
		},
		{
			name:    "Response",
			write:   func(c *Console) { c.Response("Hi there") },
			wantOut: "\nResponse: Hi there\n",
		},
		{
			name:    "Multi-line response is printed verbatim",
			write:   func(c *Console) { c.Response("line1\n\n  line2") },
			wantOut: "\nResponse: line1\n\n  line2\n",
		},
		{
			name:    "Goodbye",
			write:   func(c *Console) { c.Goodbye() },
			wantOut: "Goodbye!\n",
		},
		{
			name:       "Error goes to error output",
			write:      func(c *Console) { c.Error(errors.New("boom")) },
			wantErrOut: "Error: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			tt.write(NewConsole(&out, &errOut))
			if out.String() != tt.wantOut {
				t.Errorf("out = %q, want %q", out.String(), tt.wantOut)
			}
			if errOut.String() != tt.wantErrOut {
				t.Errorf("errOut = %q, want %q", errOut.String(), tt.wantErrOut)
			}
		})
	}
}
