package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/acarl005/stripansi"
	"golang.org/x/sync/errgroup"
	m "verdict.dev/pkg/verdict/internal/model"
)

// EngineName is the engine segment of every identifier this adapter reports.
const EngineName = "go-test"

// PackageCaseName names the case reported when a package fails without any
// failing test, e.g. a panic in init or TestMain exiting non-zero.
const PackageCaseName = "[package]"

// EventSink receives engine events. OnTestFinished is only called for leaf
// test cases; cause is nil when the engine reported no failure detail.
type EventSink interface {
	OnTestStarted(id m.TestIdentifier)
	OnTestFinished(id m.TestIdentifier, status m.OutcomeStatus, cause error)
}

// BuildFailureSink is optionally implemented by sinks that record suites the
// engine could not compile.
type BuildFailureSink interface {
	OnBuildFailed(suite string, output string)
}

// TestRunnerAdapter abstracts the external test execution engine.
type TestRunnerAdapter interface {
	// Execute runs every suite, one engine invocation per Go module, and
	// blocks until all cases have reported completion.
	Execute(ctx context.Context, suites []m.SuiteHandle, sink EventSink) error
}

// FormatTestIdentifier builds the identifier reported for a test case of suite.
// Brackets in either name are escaped; see model.EscapeSegment.
func FormatTestIdentifier(suite, test string) m.TestIdentifier {
	return m.TestIdentifier(fmt.Sprintf("[engine:%s]/[class:%s]/[method:%s()]",
		EngineName, m.EscapeSegment(suite), m.EscapeSegment(test)))
}

// LocalTestRunnerAdapter runs suites through `go test -json`.
type LocalTestRunnerAdapter struct {
	goBinary  string
	extraArgs []string
}

// TestRunnerOption configures a LocalTestRunnerAdapter.
type TestRunnerOption func(*LocalTestRunnerAdapter)

// WithGoBinary overrides the go executable.
func WithGoBinary(path string) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		if strings.TrimSpace(path) != "" {
			a.goBinary = path
		}
	}
}

// WithExtraArgs appends arguments to every go test invocation (e.g. -race).
func WithExtraArgs(args ...string) TestRunnerOption {
	return func(a *LocalTestRunnerAdapter) {
		a.extraArgs = append(a.extraArgs, args...)
	}
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter(opts ...TestRunnerOption) *LocalTestRunnerAdapter {
	a := &LocalTestRunnerAdapter{goBinary: "go"}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Execute runs `go test -json` once per module and streams the events to sink.
// Modules run in the order their first suite was requested.
func (a *LocalTestRunnerAdapter) Execute(ctx context.Context, suites []m.SuiteHandle, sink EventSink) error {
	for _, group := range groupByModule(suites) {
		if err := a.executeModule(ctx, group.root, group.suites, sink); err != nil {
			return err
		}
	}

	return nil
}

type moduleGroup struct {
	root   m.Path
	suites []m.SuiteHandle
}

func groupByModule(suites []m.SuiteHandle) []moduleGroup {
	var groups []moduleGroup

	index := make(map[m.Path]int)

	for _, suite := range suites {
		i, ok := index[suite.ModuleRoot]
		if !ok {
			i = len(groups)
			index[suite.ModuleRoot] = i
			groups = append(groups, moduleGroup{root: suite.ModuleRoot})
		}

		groups[i].suites = append(groups[i].suites, suite)
	}

	return groups
}

func (a *LocalTestRunnerAdapter) executeModule(ctx context.Context, moduleRoot m.Path, suites []m.SuiteHandle, sink EventSink) error {
	args := buildTestArgs(suites, a.extraArgs)

	cmd := exec.CommandContext(ctx, a.goBinary, args...)
	cmd.Dir = string(moduleRoot)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	slog.Info("Starting go test", "dir", moduleRoot, "args", args)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", a.goBinary, err)
	}

	decoder := newEventDecoder(suites, sink)

	var (
		group     errgroup.Group
		stderrBuf bytes.Buffer
	)

	group.Go(func() error {
		return decoder.decode(stdout)
	})

	group.Go(func() error {
		_, err := io.Copy(&stderrBuf, stderr)
		return err
	})

	streamErr := group.Wait()
	waitErr := cmd.Wait()

	if streamErr != nil {
		return fmt.Errorf("read go test output: %w", streamErr)
	}

	if waitErr == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("go test interrupted: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && decoder.packagesDone > 0 {
		// Every failing package was reported as failed cases or a build failure.
		slog.Debug("go test exited with failures", "dir", moduleRoot, "exitCode", exitErr.ExitCode())
		return nil
	}

	return fmt.Errorf("go test failed in %s: %w: %s", moduleRoot, waitErr, strings.TrimSpace(stderrBuf.String()))
}

func buildTestArgs(suites []m.SuiteHandle, extra []string) []string {
	var (
		tests       []string
		importPaths []string
	)

	seenTests := make(map[string]struct{})
	seenPaths := make(map[string]struct{})

	for _, suite := range suites {
		for _, test := range suite.Tests {
			if _, ok := seenTests[test]; !ok {
				seenTests[test] = struct{}{}
				tests = append(tests, regexp.QuoteMeta(test))
			}
		}

		if _, ok := seenPaths[suite.ImportPath]; !ok {
			seenPaths[suite.ImportPath] = struct{}{}
			importPaths = append(importPaths, suite.ImportPath)
		}
	}

	args := []string{"test", "-json", "-count=1"}
	if len(tests) > 0 {
		args = append(args, "-run", "^("+strings.Join(tests, "|")+")$")
	}

	args = append(args, extra...)

	return append(args, importPaths...)
}

// test2json actions.
const (
	actionStart       = "start"
	actionRun         = "run"
	actionOutput      = "output"
	actionPass        = "pass"
	actionFail        = "fail"
	actionSkip        = "skip"
	actionBuildOutput = "build-output"
	actionBuildFail   = "build-fail"
)

// testEvent is one line of `go test -json` output.
type testEvent struct {
	Time        time.Time
	Action      string
	Package     string
	Test        string
	Elapsed     float64
	Output      string
	ImportPath  string
	FailedBuild string
}

type testKey struct {
	pkg  string
	test string
}

type testState struct {
	output      []string
	hasChildren bool
	done        bool
}

// eventDecoder converts a test2json stream into sink callbacks. Tests that
// have subtests are containers and are not reported as finished.
type eventDecoder struct {
	sink          EventSink
	suites        map[string][]m.SuiteHandle
	tests         map[testKey]*testState
	order         []testKey
	packageOutput map[string][]string
	buildOutput   map[string][]string
	buildReported map[string]bool
	failedCases   map[string]int
	packagesDone  int
}

func newEventDecoder(suites []m.SuiteHandle, sink EventSink) *eventDecoder {
	index := make(map[string][]m.SuiteHandle)
	for _, suite := range suites {
		index[suite.ImportPath] = append(index[suite.ImportPath], suite)
	}

	return &eventDecoder{
		sink:          sink,
		suites:        index,
		tests:         make(map[testKey]*testState),
		packageOutput: make(map[string][]string),
		buildOutput:   make(map[string][]string),
		buildReported: make(map[string]bool),
		failedCases:   make(map[string]int),
	}
}

const maxEventLineSize = 16 * 1024 * 1024

func (d *eventDecoder) decode(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var event testEvent
		if err := json.Unmarshal(line, &event); err != nil {
			slog.Debug("Skipping non-JSON go test output", "line", string(line))
			continue
		}

		d.handle(event)
	}

	return scanner.Err()
}

func (d *eventDecoder) handle(event testEvent) {
	if event.Test == "" {
		d.handlePackageEvent(event)
		return
	}

	key := testKey{pkg: event.Package, test: event.Test}

	switch event.Action {
	case actionRun:
		d.state(key)
		d.markAncestors(key)
		d.sink.OnTestStarted(d.identifier(key))
	case actionOutput:
		d.state(key).output = append(d.state(key).output, event.Output)
	case actionPass:
		d.finish(key, m.Successful)
	case actionFail:
		d.finish(key, m.Failed)
	case actionSkip:
		d.state(key).done = true
		slog.Debug("Test skipped", "package", key.pkg, "test", key.test)
	}
}

func (d *eventDecoder) handlePackageEvent(event testEvent) {
	switch event.Action {
	case actionBuildOutput:
		d.buildOutput[event.ImportPath] = append(d.buildOutput[event.ImportPath], event.Output)
	case actionBuildFail:
		d.reportBuildFailure(event.ImportPath, d.buildOutput[event.ImportPath])
	case actionOutput:
		d.packageOutput[event.Package] = append(d.packageOutput[event.Package], event.Output)
	case actionStart:
		slog.Debug("Package started", "package", event.Package)
	case actionPass, actionFail, actionSkip:
		d.packagesDone++

		d.abortUnfinished(event.Package)

		if event.Action == actionFail {
			d.handlePackageFailure(event)
		}
	}
}

// handlePackageFailure makes sure a failed package leaves a trace in the
// report: a build failure, its failing cases, or a PackageCaseName outcome.
func (d *eventDecoder) handlePackageFailure(event testEvent) {
	if event.FailedBuild != "" {
		d.reportBuildFailure(event.FailedBuild, d.buildOutput[event.FailedBuild])
		return
	}

	output := d.packageOutput[event.Package]
	joined := strings.Join(output, "")

	if strings.Contains(joined, "[build failed]") || strings.Contains(joined, "[setup failed]") {
		d.reportBuildFailure(event.Package, output)
		return
	}

	if d.failedCases[event.Package] > 0 {
		return
	}

	cause := errors.New("package failed without a failing test")
	if msg := failureMessage(output); msg != "" {
		cause = errors.New(msg)
	}

	slog.Warn("Package failed outside of its tests", "package", event.Package)

	d.failedCases[event.Package]++
	d.sink.OnTestFinished(FormatTestIdentifier(d.suiteName(event.Package, ""), PackageCaseName), m.Aborted, cause)
}

func (d *eventDecoder) reportBuildFailure(importPath string, output []string) {
	// Build events name the test variant, e.g. "example.com/x [example.com/x.test]".
	pkg, _, _ := strings.Cut(importPath, " ")
	if d.buildReported[pkg] {
		return
	}

	d.buildReported[pkg] = true

	sink, ok := d.sink.(BuildFailureSink)
	if !ok {
		return
	}

	sink.OnBuildFailed(d.suiteName(pkg, ""), cleanOutput(output))
}

// abortUnfinished reports tests of pkg that started but never finished, which
// happens when the test binary crashes or times out.
func (d *eventDecoder) abortUnfinished(pkg string) {
	for _, key := range d.order {
		if key.pkg != pkg {
			continue
		}

		state := d.tests[key]
		if state.done || state.hasChildren {
			continue
		}

		state.done = true

		cause := errors.New("test did not report completion")
		if msg := failureMessage(state.output); msg != "" {
			cause = errors.New(msg)
		}

		d.failedCases[key.pkg]++
		d.sink.OnTestFinished(d.identifier(key), m.Aborted, cause)
	}
}

func (d *eventDecoder) finish(key testKey, status m.OutcomeStatus) {
	state := d.state(key)
	if state.done {
		return
	}

	state.done = true

	if state.hasChildren {
		return
	}

	var cause error

	if status != m.Successful {
		d.failedCases[key.pkg]++

		if msg := failureMessage(state.output); msg != "" {
			cause = errors.New(msg)
		}
	}

	d.sink.OnTestFinished(d.identifier(key), status, cause)
}

func (d *eventDecoder) state(key testKey) *testState {
	state, ok := d.tests[key]
	if !ok {
		state = &testState{}
		d.tests[key] = state
		d.order = append(d.order, key)
	}

	return state
}

func (d *eventDecoder) markAncestors(key testKey) {
	name := key.test
	for {
		idx := strings.LastIndex(name, "/")
		if idx == -1 {
			return
		}

		name = name[:idx]
		d.state(testKey{pkg: key.pkg, test: name}).hasChildren = true
	}
}

func (d *eventDecoder) identifier(key testKey) m.TestIdentifier {
	return FormatTestIdentifier(d.suiteName(key.pkg, key.test), key.test)
}

// suiteName maps a package and test back to the requested suite name.
func (d *eventDecoder) suiteName(pkg, test string) string {
	handles := d.suites[pkg]
	if len(handles) == 0 {
		return pkg
	}

	top, _, _ := strings.Cut(test, "/")

	for _, handle := range handles {
		for _, name := range handle.Tests {
			if name == top {
				return handle.Name
			}
		}
	}

	return handles[0].Name
}

var testFrameworkLine = []string{
	"=== RUN", "=== PAUSE", "=== CONT", "=== NAME",
	"--- PASS", "--- FAIL", "--- SKIP",
}

// failureMessage extracts the human-readable part of a test's output.
func failureMessage(output []string) string {
	var lines []string

	for _, chunk := range output {
		for _, line := range strings.Split(chunk, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || isFrameworkLine(trimmed) {
				continue
			}

			lines = append(lines, trimmed)
		}
	}

	return stripansi.Strip(strings.Join(lines, "\n"))
}

func isFrameworkLine(line string) bool {
	for _, prefix := range testFrameworkLine {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}

func cleanOutput(output []string) string {
	return stripansi.Strip(strings.TrimSpace(strings.Join(output, "")))
}
