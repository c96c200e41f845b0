package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/openclaw/clawgrep/internal/cli"
	"github.com/openclaw/clawgrep/internal/config"
)

const quickStart = `clawgrep - extract events from agent JSONL session logs

Quick start:
  clawgrep exec                         Shell commands from the current session
  clawgrep thinking --last 5            Last five reasoning blocks
  clawgrep all session.jsonl            Everything from a specific log
  clawgrep web fetch -                  Web activity from stdin

For help:
  clawgrep --help                       All modes and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":         cfg.Format,
		"config_errors":         cfg.Errors,
		"config_no_color":       strconv.FormatBool(cfg.NoColor),
		"config_quiet":          strconv.FormatBool(cfg.Quiet),
		"config_verbose":        strconv.FormatBool(cfg.Verbose),
		"config_last":           strconv.Itoa(cfg.Last),
		"config_sessions_index": cfg.SessionsIndex,
	}

	ctx := kong.Parse(&c,
		kong.Name("clawgrep"),
		kong.Description("Extract exec/thinking/web/fetch/file events from agent JSONL session logs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		// Flag parse failures are argument errors, which exit 2 like
		// mode validation does.
		kong.Exit(func(code int) {
			if code != 0 {
				os.Exit(2)
			}
			os.Exit(0)
		}),
		vars,
	)

	err = ctx.Run(cli.NewGlobals(cfg))
	var usage *cli.UsageError
	switch {
	case errors.As(err, &usage):
		os.Exit(2) // already reported with an [error] prefix
	case err != nil:
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		os.Exit(1)
	}
}
