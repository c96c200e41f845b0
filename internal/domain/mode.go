package domain

import (
	"sort"

	"github.com/samber/lo"
)

// Mode selects one extraction rule category for a run.
type Mode string

const (
	ModeExec     Mode = "exec"
	ModeThinking Mode = "thinking"
	ModeWeb      Mode = "web"
	ModeFetch    Mode = "fetch"
	ModeFile     Mode = "file"
	ModeAll      Mode = "all"
)

// AllModes lists the concrete rule categories "all" expands to, in the fixed
// rule-checking order.
var AllModes = []Mode{ModeExec, ModeThinking, ModeWeb, ModeFetch, ModeFile}

// ValidModeNames is the accepted set of positional mode tokens.
var ValidModeNames = []string{"exec", "thinking", "web", "fetch", "file", "all"}

// IsValidMode reports whether token names a known mode (including "all").
func IsValidMode(token string) bool {
	return lo.Contains(ValidModeNames, token)
}

// ParseModes converts positional tokens into a deduplicated mode set, with
// "all" expanded. Unknown tokens are returned separately, sorted, so the
// caller can report them all at once.
func ParseModes(tokens []string) (modes []Mode, unknown []string) {
	valid, bad := lo.FilterReject(tokens, func(t string, _ int) bool {
		return IsValidMode(t)
	})
	if len(bad) > 0 {
		unknown = lo.Uniq(bad)
		sort.Strings(unknown)
	}
	selected := lo.Map(valid, func(t string, _ int) Mode { return Mode(t) })
	if lo.Contains(selected, ModeAll) {
		selected = append(selected, AllModes...)
	}
	// Keep the fixed rule order regardless of how the tokens were given.
	for _, m := range AllModes {
		if lo.Contains(selected, m) {
			modes = append(modes, m)
		}
	}
	return modes, unknown
}
