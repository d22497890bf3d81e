package report

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guimove/workmap/internal/model"
)

// Reporter formats and writes a finished simulation run.
type Reporter interface {
	Report(ctx context.Context, run *model.SimulationRun, meta ReportMeta) error
}

// ReportMeta contains contextual metadata for the report.
type ReportMeta struct {
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generated_at"`
	Parsed      int       `json:"parsed_tokens"` // tokens read, including dropped units
}

// NewReporter creates a reporter for the given format writing to w.
func NewReporter(format string, w io.Writer) Reporter {
	switch format {
	case "json":
		return &JSONReporter{w: w}
	case "markdown":
		return &MarkdownReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}

// joinInts renders values separated by single spaces.
func joinInts[T ~int | ~int64](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, " ")
}

// joinAssignment renders an assignment aligned with unit positions; units
// no worker received are shown as "-".
func joinAssignment(a model.Assignment) string {
	parts := make([]string, len(a))
	for i, w := range a {
		if w == model.Unassigned {
			parts[i] = "-"
			continue
		}
		parts[i] = strconv.Itoa(int(w))
	}
	return strings.Join(parts, " ")
}
