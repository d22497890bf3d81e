package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/guimove/workmap/internal/model"
)

// JSONReporter outputs the run as JSON.
type JSONReporter struct {
	w io.Writer
}

type jsonOutput struct {
	Meta ReportMeta           `json:"meta"`
	Run  *model.SimulationRun `json:"run"`
}

func (r *JSONReporter) Report(ctx context.Context, run *model.SimulationRun, meta ReportMeta) error {
	output := jsonOutput{
		Meta: meta,
		Run:  run,
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
