package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/clawgrep/internal/config"
)

// testGlobals creates a Globals struct with captured stdout/stderr
func testGlobals() (*Globals, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &Globals{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(""),
		TTY:    false,
		Config: config.Default(),
	}, stdout, stderr
}

// newCLI mirrors the kong tag defaults for direct construction in tests.
func newCLI(args ...string) *CLI {
	return &CLI{
		Args:   args,
		Errors: "stderr",
		Format: "text",
	}
}

func writeSession(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

const execLine = `{"type":"message","timestamp":"t1","message":{"content":[{"type":"toolCall","name":"exec","arguments":{"command":"ls"}}]}}`

func TestRun_ModeValidation(t *testing.T) {
	t.Run("unknown mode exits with usage error and no output", func(t *testing.T) {
		path := writeSession(t, execLine)
		globals, stdout, stderr := testGlobals()

		err := newCLI("foo", "exec", path).Run(globals)

		var uerr *UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, stderr.String(), "[error] Unknown mode(s): foo.")
		assert.Contains(t, stderr.String(), "Valid: exec, thinking, web, fetch, file, all")
		assert.Empty(t, stdout.String())
	})

	t.Run("multiple unknown modes listed together", func(t *testing.T) {
		globals, _, stderr := testGlobals()

		err := newCLI("zzz", "foo", "exec").Run(globals)

		var uerr *UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, stderr.String(), "Unknown mode(s): foo, zzz.")
	})

	t.Run("leading path token means no modes", func(t *testing.T) {
		path := writeSession(t, execLine)
		globals, _, stderr := testGlobals()

		err := newCLI(path).Run(globals)

		var uerr *UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, stderr.String(), "[error] No mode given.")
	})
}

func TestRun_ExecExtraction(t *testing.T) {
	path := writeSession(t, execLine)
	globals, stdout, stderr := testGlobals()

	err := newCLI("exec", path).Run(globals)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, fmt.Sprintf("[info] Loaded session file: %s\n", path))
	assert.Contains(t, out, "t1\texec\tls\n")
}

func TestRun_QuietSuppressesInfoLine(t *testing.T) {
	path := writeSession(t, execLine)
	globals, stdout, _ := testGlobals()

	c := newCLI("exec", path)
	c.Quiet = true
	require.NoError(t, c.Run(globals))

	assert.NotContains(t, stdout.String(), "[info]")
	assert.Contains(t, stdout.String(), "t1\texec\tls\n")
}

func TestRun_MalformedLines(t *testing.T) {
	t.Run("default reports a warning and continues", func(t *testing.T) {
		path := writeSession(t, `{bad json`, execLine)
		globals, stdout, stderr := testGlobals()

		require.NoError(t, newCLI("exec", path).Run(globals))

		assert.Contains(t, stderr.String(), "[warn] "+path+": invalid JSON:")
		assert.Equal(t, 1, strings.Count(stdout.String(), "\texec\t"))
	})

	t.Run("errors=ignore stays silent", func(t *testing.T) {
		path := writeSession(t, `{bad json`, execLine)
		globals, stdout, stderr := testGlobals()

		c := newCLI("exec", path)
		c.Errors = "ignore"
		require.NoError(t, c.Run(globals))

		assert.Empty(t, stderr.String())
		assert.Equal(t, 1, strings.Count(stdout.String(), "\texec\t"))
	})
}

func TestRun_ZeroMatchesIsSuccess(t *testing.T) {
	path := writeSession(t, `{"type":"other"}`)
	globals, stdout, stderr := testGlobals()

	c := newCLI("exec", path)
	c.Quiet = true
	require.NoError(t, c.Run(globals))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_LastWindow(t *testing.T) {
	lines := make([]string, 5)
	for i := range lines {
		lines[i] = fmt.Sprintf(`{"type":"message","timestamp":"t%d","message":{"content":[{"type":"toolCall","name":"exec","arguments":{"command":"e%d"}}]}}`, i+1, i+1)
	}
	path := writeSession(t, lines...)

	t.Run("last 2 keeps the final two in order", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		c := newCLI("exec", path)
		c.Quiet = true
		c.Last = 2
		require.NoError(t, c.Run(globals))

		assert.Equal(t, "t4\texec\te4\nt5\texec\te5\n", stdout.String())
	})

	t.Run("last 0 keeps everything", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		c := newCLI("exec", path)
		c.Quiet = true
		require.NoError(t, c.Run(globals))

		assert.Equal(t, 5, strings.Count(stdout.String(), "\texec\t"))
	})
}

func TestRun_ThinkingNewlines(t *testing.T) {
	line := `{"type":"message","timestamp":"t1","message":{"content":[{"type":"thinking","thinking":"line1\nline2"}]}}`
	path := writeSession(t, line)

	t.Run("escaped by default", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		c := newCLI("thinking", path)
		c.Quiet = true
		require.NoError(t, c.Run(globals))

		assert.Equal(t, `t1	thinking	line1\nline2`+"\n", stdout.String())
	})

	t.Run("keep-newlines spans physical lines", func(t *testing.T) {
		globals, stdout, _ := testGlobals()
		c := newCLI("thinking", path)
		c.Quiet = true
		c.KeepNewlines = true
		require.NoError(t, c.Run(globals))

		assert.Equal(t, "t1\tthinking\tline1\nline2\n", stdout.String())
	})
}

func TestRun_Stdin(t *testing.T) {
	globals, stdout, _ := testGlobals()
	globals.Stdin = strings.NewReader(execLine + "\n")

	require.NoError(t, newCLI("exec", "-").Run(globals))

	assert.NotContains(t, stdout.String(), "[info]")
	assert.Contains(t, stdout.String(), "t1\texec\tls\n")
}

func TestRun_AllModesAcrossRecords(t *testing.T) {
	path := writeSession(t,
		execLine,
		`{"type":"message","timestamp":"t2","message":{"content":[{"type":"toolCall","name":"web_search","arguments":{"query":"q"}}]}}`,
		`{"type":"message","timestamp":"t3","message":{"content":[{"type":"toolCall","name":"edit","arguments":{"file_path":"m.go"}}]}}`,
	)
	globals, stdout, _ := testGlobals()
	c := newCLI("all", path)
	c.Quiet = true
	require.NoError(t, c.Run(globals))

	assert.Equal(t, "t1\texec\tls\nt2\tweb\tq\nt3\tedit\tm.go\n", stdout.String())
}

func TestRun_NDJSONFormat(t *testing.T) {
	path := writeSession(t, execLine)
	globals, stdout, _ := testGlobals()

	c := newCLI("exec", path)
	c.Quiet = true
	c.Format = "ndjson"
	c.Summary = true
	require.NoError(t, c.Run(globals))

	dec := json.NewDecoder(stdout)

	var ev map[string]interface{}
	require.NoError(t, dec.Decode(&ev))
	assert.Equal(t, "event", ev["type"])
	assert.Equal(t, "exec", ev["label"])
	assert.Equal(t, "ls", ev["payload"])

	var sum map[string]interface{}
	require.NoError(t, dec.Decode(&sum))
	assert.Equal(t, "summary", sum["type"])
	assert.EqualValues(t, 1, sum["total"])
}

func TestRun_NDJSONStdoutStaysMachineReadable(t *testing.T) {
	// Without --quiet the session-file notice must arrive as an info object,
	// never as a raw text line between the JSON objects.
	path := writeSession(t, execLine)
	globals, stdout, _ := testGlobals()

	c := newCLI("exec", path)
	c.Format = "ndjson"
	require.NoError(t, c.Run(globals))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	for i, line := range lines {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), "line %d not JSON: %q", i, line)
	}

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "info", info["type"])
	assert.Equal(t, path, info["path"])

	var ev map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &ev))
	assert.Equal(t, "event", ev["type"])
}

func TestRun_SummaryTable(t *testing.T) {
	path := writeSession(t, execLine, execLine)
	globals, stdout, _ := testGlobals()

	c := newCLI("exec", path)
	c.Quiet = true
	c.Summary = true
	require.NoError(t, c.Run(globals))

	out := stdout.String()
	assert.Contains(t, out, "EVENT")
	assert.Contains(t, out, "exec")
	assert.Contains(t, out, "2")
}

func TestRun_Autodetection(t *testing.T) {
	t.Run("uses the sessions index when no paths given", func(t *testing.T) {
		sessionPath := writeSession(t, execLine)
		index := filepath.Join(t.TempDir(), "sessions.json")
		require.NoError(t, os.WriteFile(index,
			[]byte(fmt.Sprintf(`{"agent:main:main":{"sessionFile":%q}}`, sessionPath)), 0o644))

		globals, stdout, _ := testGlobals()
		c := newCLI("exec")
		c.SessionsIndex = index
		require.NoError(t, c.Run(globals))

		assert.Contains(t, stdout.String(), "[info] Loaded session file: "+sessionPath)
		assert.Contains(t, stdout.String(), "t1\texec\tls\n")
	})

	t.Run("autodetection failure is a usage error", func(t *testing.T) {
		globals, stdout, stderr := testGlobals()
		c := newCLI("exec")
		c.SessionsIndex = filepath.Join(t.TempDir(), "missing.json")

		err := c.Run(globals)
		var uerr *UsageError
		require.ErrorAs(t, err, &uerr)
		assert.Contains(t, stderr.String(), "[error] autodetect failed: sessions file not found")
		assert.Empty(t, stdout.String())
	})
}

func TestSplitArgs(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "log")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))

	tests := []struct {
		name  string
		args  []string
		modes []string
		paths []string
	}{
		{"modes only", []string{"exec", "thinking"}, []string{"exec", "thinking"}, nil},
		{"dash starts paths", []string{"exec", "-"}, []string{"exec"}, []string{"-"}},
		{"dot starts paths", []string{"all", "s.jsonl"}, []string{"all"}, []string{"s.jsonl"}},
		{"separator starts paths", []string{"web", "logs/s"}, []string{"web"}, []string{"logs/s"}},
		{"existing file starts paths", []string{"exec", existing}, []string{"exec"}, []string{existing}},
		{"everything after first path is a path", []string{"exec", "a.jsonl", "foo"}, []string{"exec"}, []string{"a.jsonl", "foo"}},
		{"bare unknown token stays a mode", []string{"exec", "foo"}, []string{"exec", "foo"}, nil},
		{"leading path means no modes", []string{"s.jsonl"}, []string{}, []string{"s.jsonl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modes, paths := splitArgs(tt.args)
			assert.Equal(t, tt.modes, modes)
			assert.Equal(t, tt.paths, paths)
		})
	}
}
