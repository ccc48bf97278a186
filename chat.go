package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-chat/pkg/aiEndpoint"
	"github.com/zicongmei/ai-chat/pkg/aiEndpoint/gemini"
	"github.com/zicongmei/ai-chat/pkg/config"
	"github.com/zicongmei/ai-chat/pkg/display"
	"github.com/zicongmei/ai-chat/pkg/flow"
	"github.com/zicongmei/ai-chat/pkg/lineReader"
)

// engineFactory builds the completion engine for a loaded config.
type engineFactory func(cfg *config.Config) aiEndpoint.AIEngine

func newGeminiEngine(cfg *config.Config) aiEndpoint.AIEngine {
	return gemini.NewClient(cfg)
}

func main() {
	// glog registers its own flags (-v, -logtostderr, -alsologtostderr, -log_dir);
	// there are no others.
	flag.Parse()
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, newGeminiEngine))
}

// run returns the process exit code: 0 when the session ends normally,
// 1 when it ends on a failure. envFiles are passed to config.Load.
func run(in io.Reader, out, errOut io.Writer, newEngine engineFactory, envFiles ...string) int {
	defer glog.Flush()

	console := display.NewConsole(out, errOut)

	cfg, err := config.Load(envFiles...)
	if err != nil {
		console.Error(err)
		glog.Warningf("Startup failed: %v", err)
		return 1
	}

	engine := newEngine(cfg)
	reader := lineReader.New(in, out)
	if err := flow.Run(context.Background(), engine, reader, console); err != nil {
		glog.Warningf("Session ended with error: %v", err)
		return 1
	}

	glog.V(0).Info("Session finished.")
	return 0
}
