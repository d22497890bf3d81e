package metrics

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/guimove/workmap/internal/model"
)

const namespace = "workmap"

// Exporter publishes simulation results as Prometheus gauges on a private
// registry. The output is meant for the node_exporter textfile collector or
// for diffing runs, not for a long-lived scrape endpoint.
type Exporter struct {
	registry *prometheus.Registry

	units      prometheus.Gauge
	serialSum  prometheus.Gauge
	workers    prometheus.Gauge
	maxLoad    *prometheus.GaugeVec
	speedup    *prometheus.GaugeVec
	efficiency *prometheus.GaugeVec
	unassigned *prometheus.GaugeVec
	workerLoad *prometheus.GaugeVec
}

// NewExporter creates an exporter with all gauges registered.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		units: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "units_total",
			Help: "Number of work units ingested.",
		}),
		serialSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "serial_sum",
			Help: "Total cost of all units, the single-worker baseline.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "workers",
			Help: "Configured worker count.",
		}),
		maxLoad: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "strategy_max_load",
			Help: "Heaviest worker load per strategy.",
		}, []string{"strategy"}),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "strategy_speedup",
			Help: "Serial sum divided by the heaviest worker load.",
		}, []string{"strategy"}),
		efficiency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "strategy_efficiency",
			Help: "Speedup divided by the worker count.",
		}, []string{"strategy"}),
		unassigned: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "strategy_unassigned_units",
			Help: "Units the strategy placed on no worker.",
		}, []string{"strategy"}),
		workerLoad: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "worker_load",
			Help: "Summed unit cost assigned to a worker.",
		}, []string{"strategy", "worker"}),
	}

	for _, c := range e.collectors() {
		e.registry.MustRegister(c)
	}
	return e
}

func (e *Exporter) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		e.units, e.serialSum, e.workers,
		e.maxLoad, e.speedup, e.efficiency, e.unassigned, e.workerLoad,
	}
}

// Registry exposes the underlying registry.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe sets every gauge from run. Earlier observations are replaced.
func (e *Exporter) Observe(run *model.SimulationRun) {
	e.maxLoad.Reset()
	e.speedup.Reset()
	e.efficiency.Reset()
	e.unassigned.Reset()
	e.workerLoad.Reset()

	e.units.Set(float64(run.Units.Len()))
	e.serialSum.Set(float64(run.SerialSum))
	e.workers.Set(float64(run.Workers))

	for _, res := range run.Results {
		e.maxLoad.WithLabelValues(res.Strategy).Set(float64(res.Maximum))
		e.speedup.WithLabelValues(res.Strategy).Set(res.Speedup)
		e.efficiency.WithLabelValues(res.Strategy).Set(res.Efficiency)
		e.unassigned.WithLabelValues(res.Strategy).Set(float64(res.Unassigned))
		for w, load := range res.Loads {
			e.workerLoad.WithLabelValues(res.Strategy, strconv.Itoa(w)).Set(float64(load))
		}
	}
}

// WriteText writes the gathered metrics in the Prometheus text format.
func (e *Exporter) WriteText(w io.Writer) error {
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile writes the text exposition to path, replacing any existing file.
func (e *Exporter) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	if err := e.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing metrics file: %w", err)
	}
	return nil
}
