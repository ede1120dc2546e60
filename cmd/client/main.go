// Command client is the terminal front-end for the proposal assistant.
//
// With no arguments it opens the interactive chat screen. Any arguments are
// joined into a single prompt, sent once, and the reply is printed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"proposal-assistant/internal/client"
	"proposal-assistant/internal/config"
	"proposal-assistant/internal/conversation"
	"proposal-assistant/internal/logging"
	"proposal-assistant/internal/tui"

	tea "charm.land/bubbletea/v2"
)

const oneShotWidth = 80

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	// The terminal belongs to the UI, so logs only go to the file.
	logger, logCloser, err := logging.Init(cfg.Log, nil)
	if err != nil {
		fmt.Fprintf(stderr, "warning: log file unavailable: %v\n", err)
	}
	defer logCloser.Close()

	chat := client.New(cfg.ServerURL, cfg.Timeout, client.WithLogger(logger))
	renderer := tui.NewRenderer(cfg.MarkdownStyle)

	if len(args) > 0 {
		return oneShot(chat, renderer, logger, strings.Join(args, " "), stdout, stderr)
	}

	program := tea.NewProgram(tui.New(tui.Options{
		Sender:   chat,
		Renderer: renderer,
		Logger:   logger,
	}))
	if _, err := program.Run(); err != nil {
		logger.Error("terminal ui failed", slog.Any("error", err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func oneShot(sender conversation.Sender, renderer tui.Renderer, logger *slog.Logger, prompt string, stdout, stderr io.Writer) int {
	session := conversation.NewSession(sender, logger)
	if !session.Submit(context.Background(), prompt) {
		fmt.Fprintln(stderr, "nothing to send: the prompt is blank")
		return 2
	}

	reply, _ := session.State().LastReply()
	out, err := renderer.Render(reply, oneShotWidth)
	if err != nil {
		logger.Warn("markdown render failed, printing source", slog.Any("error", err))
		out = reply + "\n"
	}
	fmt.Fprint(stdout, out)
	return 0
}
