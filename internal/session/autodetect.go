// Package session locates the agent's current session log via the side-car
// sessions index the agent runtime maintains.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIndexRelPath is the sessions index location relative to the user's
// home directory.
const DefaultIndexRelPath = ".openclaw/agents/main/sessions/sessions.json"

// mainAgentKey identifies the main agent's entry in the index.
const mainAgentKey = "agent:main:main"

// DefaultIndexPath resolves the sessions index under the user's home
// directory.
func DefaultIndexPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("autodetect failed: cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultIndexRelPath), nil
}

// Autodetect reads the sessions index at indexPath and returns the session
// file recorded for the main agent. Every failure mode gets its own message
// because the caller surfaces it verbatim as a fatal configuration error.
func Autodetect(indexPath string) (string, error) {
	raw, err := os.ReadFile(indexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("autodetect failed: sessions file not found: %s", indexPath)
		}
		return "", fmt.Errorf("autodetect failed: cannot read %s: %w", indexPath, err)
	}

	var index map[string]interface{}
	if err := json.Unmarshal(raw, &index); err != nil {
		return "", fmt.Errorf("autodetect failed: invalid JSON in %s: %w", indexPath, err)
	}

	main, ok := index[mainAgentKey].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("autodetect failed: missing key %q in sessions.json", mainAgentKey)
	}

	sessionFile, _ := main["sessionFile"].(string)
	sessionFile = strings.TrimSpace(sessionFile)
	if sessionFile == "" {
		return "", fmt.Errorf("autodetect failed: %q missing/empty", mainAgentKey+".sessionFile")
	}
	return sessionFile, nil
}
