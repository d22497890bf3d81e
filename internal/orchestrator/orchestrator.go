package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/guimove/workmap/internal/config"
	"github.com/guimove/workmap/internal/metrics"
	"github.com/guimove/workmap/internal/model"
	"github.com/guimove/workmap/internal/report"
	"github.com/guimove/workmap/internal/simulation"
	"github.com/guimove/workmap/internal/units"
)

// Orchestrator coordinates the end-to-end pipeline:
// ingest → simulate → report → export.
type Orchestrator struct {
	Config config.Config
	Source units.Source
	Writer io.Writer
	Logger *log.Logger
}

// New creates an orchestrator reading from source and reporting to stdout.
func New(cfg config.Config, source units.Source) *Orchestrator {
	return &Orchestrator{
		Config: cfg,
		Source: source,
		Writer: os.Stdout,
		Logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "workmap"}),
	}
}

// Run executes the full pipeline and returns the finished run.
func (o *Orchestrator) Run(ctx context.Context) (*model.SimulationRun, error) {
	cfg := o.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := o.logger()

	strategies, err := simulation.Select(cfg.Simulation.Strategies)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	// Step 1: Ingest units
	seq, parsed, err := o.ingest(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("ingested units", "source", o.Source.Name(), "tokens", parsed, "units", seq.Len())

	// Step 2: Simulate
	engine := simulation.NewEngine(strategies...)
	run, err := engine.Run(ctx, seq, cfg.Simulation.Workers, cfg.Simulation.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("running simulation: %w", err)
	}
	for _, res := range run.Results {
		logger.Debug("strategy finished",
			"strategy", res.Strategy,
			"maximum", res.Maximum,
			"speedup", res.Speedup,
			"unassigned", res.Unassigned)
	}
	logger.Debug("simulation complete", "workers", run.Workers, "block_size", run.BlockSize, "duration", run.Duration)

	// Step 3: Report
	reporter := report.NewReporter(cfg.Output.Format, o.Writer)
	meta := report.ReportMeta{
		Source:      o.Source.Name(),
		GeneratedAt: time.Now().UTC(),
		Parsed:      parsed,
	}
	if err := reporter.Report(ctx, run, meta); err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	// Step 4: Optional exports
	if cfg.Output.MetricsFile != "" {
		exporter := metrics.NewExporter()
		exporter.Observe(run)
		if err := exporter.WriteFile(cfg.Output.MetricsFile); err != nil {
			return nil, err
		}
		logger.Info("wrote metrics", "path", cfg.Output.MetricsFile)
	}
	if cfg.Output.PlotFile != "" {
		if err := report.PlotLoads(run, cfg.Output.PlotFile); err != nil {
			return nil, err
		}
		logger.Info("wrote plot", "path", cfg.Output.PlotFile)
	}

	return run, nil
}

func (o *Orchestrator) ingest(ctx context.Context) (model.UnitSequence, int, error) {
	rc, err := o.Source.Open(ctx)
	if err != nil {
		return model.UnitSequence{}, 0, err
	}
	defer rc.Close()

	var opts []units.StoreOption
	if o.Config.Input.MaxUnits > 0 {
		opts = append(opts, units.WithMaxCapacity(o.Config.Input.MaxUnits))
	}
	store := units.NewStore(opts...)

	parsed, err := store.Ingest(ctx, rc)
	if err != nil {
		return model.UnitSequence{}, parsed, fmt.Errorf("ingesting units from %s: %w", o.Source.Name(), err)
	}
	return store.Sequence(), parsed, nil
}

func (o *Orchestrator) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
