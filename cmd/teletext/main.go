package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/teletext/internal/logging"
	"github.com/csheth/teletext/internal/teletext"
	"github.com/csheth/teletext/internal/tui"
)

func main() {
	baseURL := flag.String("base-url", teletext.DefaultBaseURL, "teletext front end base URL")
	startPage := flag.Int("start-page", teletext.StartPage, "page shown at startup")
	width := flag.Int("width", tui.DefaultWidth, "frame width in cells")
	logFile := flag.String("log", "", "write diagnostics to this file (default: discard)")
	logLevel := flag.String("log-level", "info", "diagnostic log level (debug, info, warn, error)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	logger, closeLogger, err := logging.New(*logLevel, *logFile)
	if err != nil {
		fmt.Println("failed to set up logging:", err)
		os.Exit(1)
	}
	defer closeLogger()

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			BaseURL:   *baseURL,
			StartPage: *startPage,
			Width:     *width,
			Logger:    logger,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
