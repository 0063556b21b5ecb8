package domain

import (
	"context"
	"log/slog"
	"sync"

	"verdict.dev/pkg/verdict/internal/adapter"
	m "verdict.dev/pkg/verdict/internal/model"
)

var (
	_ adapter.EventSink        = (*Accumulator)(nil)
	_ adapter.BuildFailureSink = (*Accumulator)(nil)
)

// Snapshot is a point-in-time copy of the accumulated suites in first-seen order.
type Snapshot struct {
	Suites        []m.SuiteResult
	CompileErrors []string
}

// Accumulator aggregates finished-test events into per-suite results.
// It is safe for concurrent use; a new Accumulator is created for every run.
type Accumulator struct {
	mu            sync.Mutex
	suites        map[string]*m.SuiteResult
	order         []string
	compileErrors []string
}

// NewAccumulator constructs an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		suites: make(map[string]*m.SuiteResult),
	}
}

// OnTestStarted is part of the event sink contract and records nothing.
func (a *Accumulator) OnTestStarted(id m.TestIdentifier) {
	slog.Debug("Test started", "id", id)
}

// OnTestFinished records the outcome of one leaf test case. Duplicate
// identifiers are recorded again rather than merged.
func (a *Accumulator) OnTestFinished(id m.TestIdentifier, status m.OutcomeStatus, cause error) {
	suiteName, caseName := ParseIdentifier(id)
	passed := status == m.Successful

	var errorMessage *string

	if !passed && cause != nil {
		msg := cause.Error()
		errorMessage = &msg
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	suite, ok := a.suites[suiteName]
	if !ok {
		suite = &m.SuiteResult{SuiteName: suiteName, Cases: []m.CaseOutcome{}}
		a.suites[suiteName] = suite
		a.order = append(a.order, suiteName)
	}

	suite.Cases = append(suite.Cases, m.CaseOutcome{
		CaseName:     caseName,
		Identifier:   string(id),
		Passed:       passed,
		ErrorMessage: errorMessage,
	})

	if passed {
		suite.PassedCount++
	} else {
		suite.FailedCount++
	}

	suite.TotalCount++

	slog.Debug("Test finished", "suite", suiteName, "case", caseName, "status", status)
}

// OnBuildFailed records that a suite could not be compiled.
func (a *Accumulator) OnBuildFailed(suite string, output string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.compileErrors = append(a.compileErrors, suite+": "+output)

	slog.Warn("Suite failed to build", "suite", suite)
}

// Consume applies channel-delivered events until the channel is closed or ctx
// is cancelled.
func (a *Accumulator) Consume(ctx context.Context, events <-chan m.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}

			switch event.Kind {
			case m.EventStarted:
				a.OnTestStarted(event.Identifier)
			case m.EventFinished:
				a.OnTestFinished(event.Identifier, event.Status, event.Cause)
			}
		}
	}
}

// Snapshot copies the current state. Later events do not affect the copy.
func (a *Accumulator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	suites := make([]m.SuiteResult, 0, len(a.order))
	for _, name := range a.order {
		suites = append(suites, a.suites[name].Clone())
	}

	compileErrors := make([]string, len(a.compileErrors))
	copy(compileErrors, a.compileErrors)

	return Snapshot{Suites: suites, CompileErrors: compileErrors}
}
