package lineReader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// LineReader reads one line of user input per call.
// ReadLine returns io.EOF once input ends or the user aborts with Ctrl-C.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// New returns a LineReader for in and out. When both are terminals it uses
// peterh/liner for line editing and in-session history; otherwise it falls
// back to a buffered reader that writes the prompt to out and reads lines of
// any length from in.
func New(in io.Reader, out io.Writer) LineReader {
	if fi, ok := in.(*os.File); ok {
		if fo, ok := out.(*os.File); ok {
			if isatty.IsTerminal(fi.Fd()) && isatty.IsTerminal(fo.Fd()) {
				glog.V(1).Info("Terminal detected, using line editor for input.")
				l := liner.NewLiner()
				l.SetCtrlCAborts(true)
				l.SetMultiLineMode(false)
				return &linerReader{l: l, out: out}
			}
		}
	}
	glog.V(1).Info("Input is not a terminal, reading lines from a buffered reader.")
	return &bufferedReader{r: bufio.NewReader(in), out: out}
}

type bufferedReader struct {
	r   *bufio.Reader
	out io.Writer
}

func (b *bufferedReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(b.out, prompt); err != nil {
		return "", err
	}
	line, err := b.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	// A final line without a newline is still a line.
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (b *bufferedReader) Close() error { return nil }

type linerReader struct {
	l   *liner.State
	out io.Writer
}

func (lr *linerReader) ReadLine(prompt string) (string, error) {
	// liner draws single-line prompts only, so leading blank lines are written directly.
	rest := strings.TrimLeft(prompt, "\n")
	if lead := prompt[:len(prompt)-len(rest)]; lead != "" {
		if _, err := fmt.Fprint(lr.out, lead); err != nil {
			return "", err
		}
	}
	line, err := lr.l.Prompt(rest)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		lr.l.AppendHistory(line)
	}
	return line, nil
}

func (lr *linerReader) Close() error {
	return lr.l.Close()
}
