// Package extract classifies parsed session-log records and pulls out the
// payload for each matching tool call or thinking block.
package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/openclaw/clawgrep/internal/domain"
)

// filePathKeys is the priority order for resolving the path argument of a
// read/write/edit tool call.
var filePathKeys = []string{"path", "file_path", "filepath", "filename", "target"}

// fileActions are the tool names the file rule matches.
var fileActions = map[string]struct{}{
	domain.LabelRead:  {},
	domain.LabelWrite: {},
	domain.LabelEdit:  {},
}

// Extractor evaluates records against the active rule categories. Rules run
// in a fixed order (exec, thinking, web, fetch, file) so output is
// reproducible for identical input.
type Extractor struct {
	modes        map[domain.Mode]struct{}
	keepNewlines bool
}

// New builds an Extractor for the given mode set. When keepNewlines is false,
// thinking payloads have embedded newlines escaped to the literal two
// characters `\n` so every event stays on one physical line.
func New(modes []domain.Mode, keepNewlines bool) *Extractor {
	set := make(map[domain.Mode]struct{}, len(modes))
	for _, m := range modes {
		set[m] = struct{}{}
	}
	return &Extractor{modes: set, keepNewlines: keepNewlines}
}

// ExtractLine parses one raw input line and extracts its events. A blank line
// yields nothing. A line that is not valid JSON yields a non-nil error; the
// caller decides whether to report it. A valid JSON value that is not an
// object is skipped without error.
func (e *Extractor) ExtractLine(line string) ([]domain.Event, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	// UseNumber keeps numeric timestamps verbatim instead of reformatting
	// them through float64.
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return e.Extract(obj), nil
}

// Extract evaluates all active rules against one parsed record. A record can
// produce multiple events: one per matching content item per active rule.
func (e *Extractor) Extract(obj map[string]interface{}) []domain.Event {
	if t, _ := obj["type"].(string); t != "message" {
		return nil
	}
	content := messageContent(obj)
	if content == nil {
		return nil
	}
	ts := timestamp(obj)

	var events []domain.Event
	if e.active(domain.ModeExec) {
		events = append(events, toolCallEvents(content, ts, "exec", "command", domain.LabelExec)...)
	}
	if e.active(domain.ModeThinking) {
		events = append(events, e.thinkingEvents(content, ts)...)
	}
	if e.active(domain.ModeWeb) {
		events = append(events, toolCallEvents(content, ts, "web_search", "query", domain.LabelWeb)...)
	}
	if e.active(domain.ModeFetch) {
		events = append(events, toolCallEvents(content, ts, "web_fetch", "url", domain.LabelFetch)...)
	}
	if e.active(domain.ModeFile) {
		events = append(events, fileEvents(content, ts)...)
	}
	return events
}

func (e *Extractor) active(m domain.Mode) bool {
	_, ok := e.modes[m]
	return ok
}

// timestamp returns the record's top-level timestamp, falling back to
// message.timestamp, then to the UNKNOWN_TIME sentinel. The value is treated
// as opaque text and never parsed.
func timestamp(obj map[string]interface{}) string {
	if ts := timestampText(obj["timestamp"]); ts != "" {
		return ts
	}
	if raw, ok := field(obj, "message", "timestamp"); ok {
		if ts := timestampText(raw); ts != "" {
			return ts
		}
	}
	return domain.UnknownTime
}

// timestampText renders a timestamp value without reformatting it: strings
// pass through, numbers keep their source digits. Anything else is not a
// timestamp.
func timestampText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	return ""
}

// messageContent returns message.content when it is an array, else nil.
func messageContent(obj map[string]interface{}) []interface{} {
	raw, ok := field(obj, "message", "content")
	if !ok {
		return nil
	}
	content, _ := raw.([]interface{})
	return content
}

// toolCallEvents covers the exec/web/fetch rules, which differ only in the
// tool name, the argument key, and the output label.
func toolCallEvents(content []interface{}, ts, tool, argKey, label string) []domain.Event {
	var events []domain.Event
	for _, item := range content {
		if !isToolCall(item, tool) {
			continue
		}
		payload, ok := stringField(item, "arguments", argKey)
		if !ok {
			continue
		}
		events = append(events, domain.Event{Timestamp: ts, Label: label, Payload: payload})
	}
	return events
}

func (e *Extractor) thinkingEvents(content []interface{}, ts string) []domain.Event {
	var events []domain.Event
	for _, item := range content {
		if t, ok := rawString(item, "type"); !ok || t != "thinking" {
			continue
		}
		text, ok := stringField(item, "thinking")
		if !ok {
			continue
		}
		if !e.keepNewlines {
			text = EscapeNewlines(text)
		}
		events = append(events, domain.Event{Timestamp: ts, Label: domain.LabelThinking, Payload: text})
	}
	return events
}

// fileEvents labels events with the specific action (read/write/edit) and
// resolves the path from the first present, non-empty argument in priority
// order, falling back to the UNKNOWN_PATH sentinel.
func fileEvents(content []interface{}, ts string) []domain.Event {
	var events []domain.Event
	for _, item := range content {
		if !isToolCall(item, "") {
			continue
		}
		action, ok := rawString(item, "name")
		if !ok {
			continue
		}
		if _, ok := fileActions[action]; !ok {
			continue
		}
		path := domain.UnknownPath
		for _, key := range filePathKeys {
			if p, ok := stringField(item, "arguments", key); ok {
				path = p
				break
			}
		}
		events = append(events, domain.Event{Timestamp: ts, Label: action, Payload: path})
	}
	return events
}

// isToolCall reports whether a content item is a toolCall, optionally
// requiring a specific tool name (empty name matches any). Both fields are
// compared exactly, no trimming.
func isToolCall(item interface{}, name string) bool {
	t, ok := rawString(item, "type")
	if !ok || t != "toolCall" {
		return false
	}
	if name == "" {
		return true
	}
	n, ok := rawString(item, "name")
	return ok && n == name
}

// EscapeNewlines collapses CRLF and lone CR to LF, then replaces each LF with
// the literal two-character sequence backslash-n.
func EscapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}
