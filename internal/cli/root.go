// Package cli implements the clawgrep command: argument handling, the
// sequential extraction run, and rendering of the collected events.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/openclaw/clawgrep/internal/domain"
	"github.com/openclaw/clawgrep/internal/extract"
	"github.com/openclaw/clawgrep/internal/output"
	"github.com/openclaw/clawgrep/internal/reader"
	"github.com/openclaw/clawgrep/internal/session"
)

// CLI is the root command. Positional arguments are one or more mode tokens
// followed by zero or more input paths; with no paths the session file is
// autodetected from the sessions index.
type CLI struct {
	Args []string `arg:"" name:"mode" help:"Modes (exec, thinking, web, fetch, file, all) followed by input paths; '-' reads stdin."`

	Errors        string `enum:"stderr,ignore" default:"${config_errors}" help:"What to do with malformed JSON lines (stderr or ignore)."`
	NoColor       bool   `default:"${config_no_color}" help:"Disable colored output even if stdout is a terminal."`
	KeepNewlines  bool   `help:"Print thinking blocks with real newlines (default: escape to keep one line per event)."`
	Last          int    `default:"${config_last}" placeholder:"N" help:"Only print the last N matching records (default: print all)."`
	Format        string `enum:"text,ndjson" default:"${config_format}" help:"Output format (text or ndjson)."`
	Summary       bool   `help:"Print per-event match counts after the records."`
	Quiet         bool   `short:"q" default:"${config_quiet}" help:"Suppress informational output."`
	Verbose       bool   `short:"v" default:"${config_verbose}" help:"Enable debug logging to stderr."`
	SessionsIndex string `default:"${config_sessions_index}" placeholder:"PATH" help:"Sessions index used to autodetect the session file."`
}

// Run executes one extraction pass over all inputs.
func (c *CLI) Run(globals *Globals) error {
	log := newDebugLogger(c.Verbose)

	modeTokens, paths := splitArgs(c.Args)
	if len(modeTokens) == 0 {
		return fail(globals, "No mode given. Valid: exec, thinking, web, fetch, file, all")
	}
	modes, unknown := domain.ParseModes(modeTokens)
	if len(unknown) > 0 {
		return fail(globals, "Unknown mode(s): %s. Valid: exec, thinking, web, fetch, file, all",
			strings.Join(unknown, ", "))
	}
	log.Debugf("active modes: %v", modes)

	if len(paths) == 0 {
		indexPath := c.SessionsIndex
		if indexPath == "" {
			var err error
			indexPath, err = session.DefaultIndexPath()
			if err != nil {
				return fail(globals, "%v", err)
			}
		}
		sessionFile, err := session.Autodetect(indexPath)
		if err != nil {
			return fail(globals, "%v", err)
		}
		log.Debugf("autodetected session file: %s", sessionFile)
		paths = []string{sessionFile}
	}

	extractor := extract.New(modes, c.KeepNewlines)
	collector := output.NewCollector(c.Last)
	counts := make(map[string]int)

	var ndjson *output.NDJSONWriter
	if c.Format == "ndjson" {
		ndjson = output.NewNDJSONWriter(globals.Stdout)
	}

	it := reader.New(paths, globals.Stdin)
	it.OnOpen(func(p string) {
		if c.Quiet {
			return
		}
		if ndjson != nil {
			ndjson.WriteInfo("Loaded session file", p)
			return
		}
		fmt.Fprintf(globals.Stdout, "[info] Loaded session file: %s\n\n", p)
	})

	lines := 0
	for {
		line, ok := it.Next()
		if !ok {
			break
		}
		lines++
		events, err := extractor.ExtractLine(line.Text)
		if err != nil {
			if c.Errors == "stderr" {
				fmt.Fprintf(globals.Stderr, "[warn] %s: invalid JSON: %v\n", line.Source, err)
			}
			continue
		}
		for _, ev := range events {
			counts[ev.Label]++
			collector.Add(ev)
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	log.Debugf("processed %d lines, matched %d events", lines, collector.Total())

	return c.render(globals, ndjson, collector, counts)
}

// render prints the windowed events plus the optional summary.
func (c *CLI) render(globals *Globals, ndjson *output.NDJSONWriter, collector *output.Collector, counts map[string]int) error {
	events := collector.Events()

	if ndjson != nil {
		for _, ev := range events {
			if err := ndjson.WriteEvent(ev); err != nil {
				return err
			}
		}
		if c.Summary {
			return ndjson.WriteSummary(counts, collector.Total())
		}
		return nil
	}

	formatter := output.NewFormatter(!c.NoColor && globals.TTY)
	for _, ev := range events {
		fmt.Fprintln(globals.Stdout, formatter.Line(ev))
	}
	if c.Summary {
		return output.RenderSummaryTable(globals.Stdout, counts, collector.Total())
	}
	return nil
}

// splitArgs separates the leading mode tokens from the trailing input paths.
// The path list starts at the first token that looks like a path; everything
// before it is validated as a mode.
func splitArgs(args []string) (modes, paths []string) {
	for i, a := range args {
		if isPathToken(a) {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// isPathToken decides the mode/path boundary: "-" (stdin), anything with a
// path separator or extension dot, or an existing file is a path. Valid mode
// names always stay modes so a file literally named "exec" must be given as
// "./exec".
func isPathToken(tok string) bool {
	if tok == "-" {
		return true
	}
	if domain.IsValidMode(tok) {
		return false
	}
	if strings.ContainsAny(tok, `/\.`) {
		return true
	}
	if _, err := os.Stat(tok); err == nil {
		return true
	}
	return false
}
