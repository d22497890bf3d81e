package report

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/guimove/workmap/internal/model"
)

// PlotLoads renders a grouped bar chart of per-worker loads, one group per
// worker and one bar per strategy. The image format follows the file
// extension (png, svg, pdf, ...).
func PlotLoads(run *model.SimulationRun, path string) error {
	if len(run.Results) == 0 {
		return fmt.Errorf("plotting loads: no strategy results")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Load per worker (%d units, serial %d)", run.Units.Len(), run.SerialSum)
	p.X.Label.Text = "Worker"
	p.Y.Label.Text = "Assigned cost"
	p.Legend.Top = true

	width := vg.Points(10)
	groups := vg.Length(len(run.Results))

	for i, res := range run.Results {
		vals := make(plotter.Values, len(res.Loads))
		for w, load := range res.Loads {
			vals[w] = float64(load)
		}

		bars, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return fmt.Errorf("plotting %s loads: %w", res.Strategy, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i)*width - (groups-1)*width/2

		p.Add(bars)
		p.Legend.Add(res.Strategy, bars)
	}

	names := make([]string, run.Workers)
	for w := range names {
		names[w] = strconv.Itoa(w)
	}
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
