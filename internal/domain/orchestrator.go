package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"verdict.dev/pkg/verdict/internal/adapter"
	"verdict.dev/pkg/verdict/internal/controller"
	m "verdict.dev/pkg/verdict/internal/model"
)

// ErrNoValidSuites is returned when none of the requested suite names resolve.
var ErrNoValidSuites = errors.New("no valid test suites provided")

// Orchestrator resolves the requested suites, runs them through the test
// engine once and builds the run report.
type Orchestrator interface {
	Run(ctx context.Context, suiteNames []string) (*m.RunReport, error)
}

type orchestrator struct {
	resolver adapter.SuiteResolverAdapter
	engine   adapter.TestRunnerAdapter
	builder  *ReportBuilder
	ui       controller.UI
}

// NewOrchestrator constructs an Orchestrator backed by the provided resolver,
// engine and report builder. Resolution failures are reported through ui.
func NewOrchestrator(
	resolver adapter.SuiteResolverAdapter,
	engine adapter.TestRunnerAdapter,
	builder *ReportBuilder,
	ui controller.UI,
) Orchestrator {
	return &orchestrator{
		resolver: resolver,
		engine:   engine,
		builder:  builder,
		ui:       ui,
	}
}

func (o *orchestrator) Run(ctx context.Context, suiteNames []string) (*m.RunReport, error) {
	runID := uuid.NewString()
	logger := slog.With("runID", runID)

	handles, err := o.resolve(ctx, logger, suiteNames)
	if err != nil {
		return nil, err
	}

	if len(handles) == 0 {
		logger.Warn("No suites resolved", "requested", len(suiteNames))
		return nil, ErrNoValidSuites
	}

	o.ui.DisplayRunInfo(ctx, runID, handles)
	logger.Info("Executing suites", "count", len(handles))

	accumulator := NewAccumulator()

	if err := o.engine.Execute(ctx, handles, accumulator); err != nil {
		logger.Error("Failed to execute suites", "error", err)
		return nil, fmt.Errorf("execute suites: %w", err)
	}

	report := o.builder.Build(accumulator.Snapshot())

	passed, failed, total := report.Totals()
	logger.Info("Run finished", "suites", len(report.Suites), "passed", passed, "failed", failed, "total", total)

	return &report, nil
}

func (o *orchestrator) resolve(ctx context.Context, logger *slog.Logger, suiteNames []string) ([]m.SuiteHandle, error) {
	handles := make([]m.SuiteHandle, 0, len(suiteNames))

	for _, name := range suiteNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		handle, err := o.resolver.Resolve(ctx, name)
		if err != nil {
			logger.Warn("Failed to resolve suite", "suite", name, "error", err)
			o.ui.DisplayResolutionError(ctx, name, err)

			continue
		}

		handles = append(handles, handle)
	}

	return handles, nil
}
