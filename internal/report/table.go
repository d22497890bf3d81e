package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guimove/workmap/internal/model"
)

// TableReporter outputs the run as plain terminal text.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(ctx context.Context, run *model.SimulationRun, meta ReportMeta) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%d units\n", run.Units.Len())
	fmt.Fprintf(&b, "%s\n", joinInts(run.Units.Values()))
	fmt.Fprintf(&b, "Serially processed units: %d\n", run.SerialSum)
	fmt.Fprintf(&b, "\n")

	for _, res := range run.Results {
		fmt.Fprintf(&b, "%s MAPPING\n", res.Label)
		fmt.Fprintf(&b, "Units-workers mapping\n")
		fmt.Fprintf(&b, "%s\n", joinAssignment(res.Assignment))
		fmt.Fprintf(&b, "Units processed per worker\n")
		fmt.Fprintf(&b, "%s\n", joinInts([]int64(res.Loads)))
		fmt.Fprintf(&b, "Maximum:    %d\n", res.Maximum)
		fmt.Fprintf(&b, "Speedup:    %.3f\n", res.Speedup)
		fmt.Fprintf(&b, "Efficiency: %.3f\n", res.Efficiency)
		if res.Unassigned > 0 {
			fmt.Fprintf(&b, "Unassigned: %d\n", res.Unassigned)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(run.Results) > 0 {
		writeSummary(&b, run)
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("writing table output: %w", err)
	}
	return nil
}

func writeSummary(b *strings.Builder, run *model.SimulationRun) {
	fmt.Fprintf(b, "Summary (%d workers, block size %d)\n", run.Workers, run.BlockSize)
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 60))
	fmt.Fprintf(b, "%-14s %9s %8s %9s %11s\n", "Strategy", "Maximum", "Busiest", "Speedup", "Efficiency")
	for _, res := range run.Results {
		note := ""
		if res.Unassigned > 0 {
			note = fmt.Sprintf("  partial: %d unassigned", res.Unassigned)
		}
		fmt.Fprintf(b, "%-14s %9d %8d %9.3f %11.3f%s\n",
			res.Strategy, res.Maximum, res.Busiest, res.Speedup, res.Efficiency, note)
	}
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", 60))

	if best, ok := run.Best(); ok && best.Maximum > 0 {
		fmt.Fprintf(b, "Best balance: %s (efficiency %.3f)\n", best.Strategy, best.Efficiency)
	}
}
