package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/openclaw/clawgrep/internal/config"
)

// Globals carries the process-level dependencies of a command run. Writers
// and the TTY flag are injected so tests can capture output and force either
// color decision.
type Globals struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	TTY    bool
	Config *config.Config
}

// NewGlobals builds Globals wired to the real process streams.
func NewGlobals(cfg *config.Config) *Globals {
	fd := os.Stdout.Fd()
	return &Globals{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		TTY:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Config: cfg,
	}
}
