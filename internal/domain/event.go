package domain

// Event labels as they appear in output. File tool calls are labeled with the
// specific action (read/write/edit), never a generic "file".
const (
	LabelExec     = "exec"
	LabelThinking = "thinking"
	LabelWeb      = "web"
	LabelFetch    = "fetch"
	LabelRead     = "read"
	LabelWrite    = "write"
	LabelEdit     = "edit"
)

// Sentinels used when a record is missing the corresponding field.
const (
	UnknownTime = "UNKNOWN_TIME"
	UnknownPath = "UNKNOWN_PATH"
)

// Event is one extracted record: a timestamp (opaque text, never parsed), a
// label from the constants above, and the payload pulled from the tool call or
// thinking block.
type Event struct {
	Timestamp string `json:"timestamp"`
	Label     string `json:"label"`
	Payload   string `json:"payload"`
}
