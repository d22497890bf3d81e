package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guimove/workmap/internal/model"
)

// MarkdownReporter outputs the run as a Markdown document.
type MarkdownReporter struct {
	w io.Writer
}

func (r *MarkdownReporter) Report(ctx context.Context, run *model.SimulationRun, meta ReportMeta) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Work Mapping Simulation\n\n")
	if meta.Source != "" {
		fmt.Fprintf(&b, "- **Source:** %s\n", meta.Source)
	}
	fmt.Fprintf(&b, "- **Units:** %d\n", run.Units.Len())
	fmt.Fprintf(&b, "- **Workers:** %d\n", run.Workers)
	fmt.Fprintf(&b, "- **Block size:** %d\n", run.BlockSize)
	fmt.Fprintf(&b, "- **Serial sum:** %d\n\n", run.SerialSum)

	fmt.Fprintf(&b, "| Strategy | Maximum | Busiest | Speedup | Efficiency | Unassigned |\n")
	fmt.Fprintf(&b, "|----------|--------:|--------:|--------:|-----------:|-----------:|\n")
	for _, res := range run.Results {
		fmt.Fprintf(&b, "| %s | %d | %d | %.3f | %.3f | %d |\n",
			res.Strategy, res.Maximum, res.Busiest, res.Speedup, res.Efficiency, res.Unassigned)
	}

	for _, res := range run.Results {
		fmt.Fprintf(&b, "\n## %s\n\n", res.Label)
		fmt.Fprintf(&b, "- Mapping: `%s`\n", joinAssignment(res.Assignment))
		fmt.Fprintf(&b, "- Loads: `%s`\n", joinInts([]int64(res.Loads)))
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("writing markdown output: %w", err)
	}
	return nil
}
