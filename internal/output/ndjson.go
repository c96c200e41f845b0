package output

import (
	"encoding/json"
	"io"

	"github.com/openclaw/clawgrep/internal/domain"
)

// NDJSONWriter emits one JSON object per line for machine consumers. NDJSON
// output is never colored.
type NDJSONWriter struct {
	enc *json.Encoder
}

// NewNDJSONWriter creates a writer targeting w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{enc: json.NewEncoder(w)}
}

type eventRecord struct {
	Type string `json:"type"`
	domain.Event
}

// WriteEvent emits one extracted event as {"type":"event",...}.
func (w *NDJSONWriter) WriteEvent(ev domain.Event) error {
	return w.enc.Encode(eventRecord{Type: "event", Event: ev})
}

type infoRecord struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// WriteInfo emits an informational object, keeping stdout machine-readable
// where text mode would print an "[info]" line.
func (w *NDJSONWriter) WriteInfo(message, path string) error {
	return w.enc.Encode(infoRecord{Type: "info", Message: message, Path: path})
}

type summaryRecord struct {
	Type   string         `json:"type"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// WriteSummary emits the per-label match counts.
func (w *NDJSONWriter) WriteSummary(counts map[string]int, total int) error {
	return w.enc.Encode(summaryRecord{Type: "summary", Total: total, Counts: counts})
}
