package model

import "strings"

// TestIdentifier is an opaque, engine-defined token naming a suite or case,
// e.g. "[engine:go-test]/[class:./store]/[method:TestPut()]".
type TestIdentifier string

var (
	segmentEscaper   = strings.NewReplacer("%", "%25", "[", "%5B", "]", "%5D")
	segmentUnescaper = strings.NewReplacer("%25", "%", "%5B", "[", "%5D", "]")
)

// EscapeSegment percent-encodes the characters that delimit identifier
// segments, so a name such as "TestKinds/map[string]int" fits in one segment.
func EscapeSegment(value string) string {
	return segmentEscaper.Replace(value)
}

// UnescapeSegment reverses EscapeSegment.
func UnescapeSegment(value string) string {
	return segmentUnescaper.Replace(value)
}

// OutcomeStatus is the engine-reported status of a finished test.
type OutcomeStatus int

const (
	// Successful indicates the test passed.
	Successful OutcomeStatus = iota
	// Failed indicates the test failed an assertion or panicked.
	Failed
	// Aborted indicates the test was interrupted before it could finish.
	Aborted
)

func (s OutcomeStatus) String() string {
	switch s {
	case Successful:
		return "successful"
	case Failed:
		return "failed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// EventKind distinguishes channel-delivered engine events.
type EventKind int

const (
	// EventStarted marks the start of a test case.
	EventStarted EventKind = iota
	// EventFinished marks the completion of a leaf test case.
	EventFinished
)

// Event is a single engine event delivered over a channel.
type Event struct {
	Kind       EventKind
	Identifier TestIdentifier
	Status     OutcomeStatus
	Cause      error
}
