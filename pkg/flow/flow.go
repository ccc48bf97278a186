package flow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-chat/pkg/aiEndpoint"
	"github.com/zicongmei/ai-chat/pkg/display"
	"github.com/zicongmei/ai-chat/pkg/lineReader"
	"github.com/zicongmei/ai-chat/pkg/prompt"
	"github.com/zicongmei/ai-chat/pkg/utils"
)

// Run drives the interactive session: it reads one line at a time from reader,
// sends it to engine and prints the response, until the exit command is typed
// or input ends. Only one request is outstanding at any time.
//
// Any failure is printed to the console's error output and ends the session;
// the error is returned.
// Run owns reader and closes it on every return path.
func Run(ctx context.Context, engine aiEndpoint.AIEngine, reader lineReader.LineReader, console *display.Console) error {
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			glog.Warningf("Failed to close line reader: %v", cerr)
		}
	}()

	glog.V(0).Info("Starting interactive session.")
	for turn := 1; ; turn++ {
		line, err := reader.ReadLine(prompt.Question)
		if errors.Is(err, io.EOF) {
			glog.V(0).Info("Input closed, ending session.")
			return console.Goodbye()
		}
		if err != nil {
			console.Error(err)
			return fmt.Errorf("failed to read input: %w", err)
		}

		if prompt.IsExit(line) {
			glog.V(0).Infof("Exit command received after %d prompts.", turn-1)
			return console.Goodbye()
		}

		glog.V(1).Infof("Prompt #%d (truncated): %q", turn, utils.TruncateString(line, 100))
		if err := console.Thinking(); err != nil {
			console.Error(err)
			return fmt.Errorf("failed to write status: %w", err)
		}

		response, err := engine.SendPrompt(ctx, line)
		if err != nil {
			console.Error(err)
			return fmt.Errorf("prompt #%d failed: %w", turn, err)
		}
		glog.V(1).Infof("Prompt #%d answered (length: %d bytes).", turn, len(response))

		if err := console.Response(response); err != nil {
			console.Error(err)
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}
