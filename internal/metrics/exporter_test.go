package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guimove/workmap/internal/model"
)

func sampleRun() *model.SimulationRun {
	return &model.SimulationRun{
		Workers:   2,
		BlockSize: 2,
		Units:     model.NewUnitSequence([]int64{5, 1, 1, 1}),
		SerialSum: 8,
		Results: []model.StrategyResult{
			{Strategy: "cyclic", Loads: model.LoadVector{6, 2}, Maximum: 6, Speedup: 8.0 / 6.0, Efficiency: 8.0 / 12.0},
			{Strategy: "dynamic", Loads: model.LoadVector{5, 3}, Maximum: 5, Speedup: 1.6, Efficiency: 0.8},
		},
	}
}

func TestExporter_Observe(t *testing.T) {
	e := NewExporter()
	e.Observe(sampleRun())

	assert.Equal(t, 4.0, testutil.ToFloat64(e.units))
	assert.Equal(t, 8.0, testutil.ToFloat64(e.serialSum))
	assert.Equal(t, 6.0, testutil.ToFloat64(e.maxLoad.WithLabelValues("cyclic")))
	assert.InDelta(t, 0.8, testutil.ToFloat64(e.efficiency.WithLabelValues("dynamic")), 1e-9)
	assert.Equal(t, 3.0, testutil.ToFloat64(e.workerLoad.WithLabelValues("dynamic", "1")))
	assert.Equal(t, 4, testutil.CollectAndCount(e.workerLoad))
}

func TestExporter_ObserveReplacesPreviousRun(t *testing.T) {
	e := NewExporter()
	e.Observe(sampleRun())

	next := sampleRun()
	next.Results = next.Results[:1]
	e.Observe(next)

	assert.Equal(t, 1, testutil.CollectAndCount(e.speedup))
}

func TestExporter_WriteText(t *testing.T) {
	e := NewExporter()
	e.Observe(sampleRun())

	var buf bytes.Buffer
	require.NoError(t, e.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE workmap_serial_sum gauge")
	assert.Contains(t, out, "workmap_serial_sum 8\n")
	assert.Contains(t, out, `workmap_strategy_max_load{strategy="dynamic"} 5`)
	assert.Contains(t, out, `workmap_worker_load{strategy="cyclic",worker="0"} 6`)
}

func TestExporter_WriteFile(t *testing.T) {
	e := NewExporter()
	e.Observe(sampleRun())

	path := filepath.Join(t.TempDir(), "workmap.prom")
	require.NoError(t, e.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "workmap_units_total 4")
}

func TestExporter_WriteFile_BadPath(t *testing.T) {
	e := NewExporter()
	err := e.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	require.Error(t, err)
}
