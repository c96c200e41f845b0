package output

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/openclaw/clawgrep/internal/domain"
)

// summaryOrder fixes the row order of the summary table: primary labels in
// rule order, then the file actions.
var summaryOrder = []string{
	domain.LabelExec,
	domain.LabelThinking,
	domain.LabelWeb,
	domain.LabelFetch,
	domain.LabelRead,
	domain.LabelWrite,
	domain.LabelEdit,
}

// RenderSummaryTable prints per-label match counts as a table. Labels with
// zero matches are omitted.
func RenderSummaryTable(w io.Writer, counts map[string]int, total int) error {
	table := tablewriter.NewTable(w)
	table.Header("EVENT", "COUNT")
	for _, label := range summaryOrder {
		n := counts[label]
		if n == 0 {
			continue
		}
		if err := table.Append([]string{label, strconv.Itoa(n)}); err != nil {
			return err
		}
	}
	if err := table.Append([]string{"total", strconv.Itoa(total)}); err != nil {
		return err
	}
	return table.Render()
}
