package model

// CaseOutcome is the recorded result of one finished test case.
type CaseOutcome struct {
	CaseName     string  `json:"test_name" yaml:"test_name"`
	Identifier   string  `json:"test_unique_id" yaml:"test_unique_id"`
	Passed       bool    `json:"is_passed" yaml:"is_passed"`
	ErrorMessage *string `json:"error_message" yaml:"error_message"`
}

// SuiteResult aggregates the outcomes of one suite.
// TotalCount == PassedCount + FailedCount == len(Cases).
type SuiteResult struct {
	SuiteName   string        `json:"test_class_name" yaml:"test_class_name"`
	PassedCount int           `json:"passed_tests" yaml:"passed_tests"`
	FailedCount int           `json:"failed_tests" yaml:"failed_tests"`
	TotalCount  int           `json:"total_tests" yaml:"total_tests"`
	Cases       []CaseOutcome `json:"test_results" yaml:"test_results"`
}

// Clone returns a deep copy of the suite result.
func (s SuiteResult) Clone() SuiteResult {
	clone := s
	clone.Cases = make([]CaseOutcome, len(s.Cases))

	for i, c := range s.Cases {
		clone.Cases[i] = c
		if c.ErrorMessage != nil {
			msg := *c.ErrorMessage
			clone.Cases[i].ErrorMessage = &msg
		}
	}

	return clone
}

// FailedCases returns the failing outcomes in arrival order.
func (s SuiteResult) FailedCases() []CaseOutcome {
	var failed []CaseOutcome

	for _, c := range s.Cases {
		if !c.Passed {
			failed = append(failed, c)
		}
	}

	return failed
}

// RunReport is the immutable result document of one run.
type RunReport struct {
	Timestamp    string        `json:"timestamp" yaml:"timestamp"`
	Suites       []SuiteResult `json:"test_classes" yaml:"test_classes"`
	Compiled     bool          `json:"compiled" yaml:"compiled"`
	CompileError *string       `json:"compile_error" yaml:"compile_error"`
}

// Totals sums the per-suite counters.
func (r RunReport) Totals() (passed, failed, total int) {
	for _, s := range r.Suites {
		passed += s.PassedCount
		failed += s.FailedCount
		total += s.TotalCount
	}

	return passed, failed, total
}
