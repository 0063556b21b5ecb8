package domain

import (
	"fmt"

	m "verdict.dev/pkg/verdict/internal/model"
)

const (
	passLabel = "PASS"
	failLabel = "FAIL"
)

type caseKey struct {
	suite    string
	testCase string
}

// caseVerdict folds repeated outcomes of one case: any failing outcome fails it.
type caseVerdict struct {
	key     caseKey
	id      string
	passed  bool
	message *string
}

// CompareReports reports how the candidate run differs from the baseline.
// Cases are matched by suite and case name. A case detected by the candidate
// passed in the baseline and fails in the candidate; the score is the share
// of baseline-passing compared cases that were detected.
func CompareReports(baseline, candidate m.RunReport) m.Comparison {
	baseCases := foldCases(baseline)
	candCases := foldCases(candidate)

	candIndex := make(map[caseKey]caseVerdict, len(candCases))
	for _, c := range candCases {
		candIndex[c.key] = c
	}

	var (
		comparison     m.Comparison
		baselinePassed int
	)

	for _, base := range baseCases {
		cand, ok := candIndex[base.key]
		if !ok {
			comparison.Missing = append(comparison.Missing, change(base))
			continue
		}

		comparison.Compared++

		switch {
		case base.passed && !cand.passed:
			comparison.Detected = append(comparison.Detected, change(cand))
		case !base.passed && cand.passed:
			comparison.Fixed = append(comparison.Fixed, change(cand))
		}

		if base.passed {
			baselinePassed++
		}
	}

	if baselinePassed > 0 {
		comparison.Score = float64(len(comparison.Detected)) / float64(baselinePassed)
	}

	comparison.BaselineLines = statusLines(baseCases)
	comparison.CandidateLines = statusLines(candCases)

	return comparison
}

func foldCases(report m.RunReport) []caseVerdict {
	var verdicts []caseVerdict

	index := make(map[caseKey]int)

	for _, suite := range report.Suites {
		for _, c := range suite.Cases {
			key := caseKey{suite: suite.SuiteName, testCase: c.CaseName}

			i, seen := index[key]
			if !seen {
				index[key] = len(verdicts)
				verdicts = append(verdicts, caseVerdict{key: key, id: c.Identifier, passed: c.Passed, message: c.ErrorMessage})

				continue
			}

			if !c.Passed && verdicts[i].passed {
				verdicts[i].passed = false
				verdicts[i].message = c.ErrorMessage
			}
		}
	}

	return verdicts
}

func change(v caseVerdict) m.CaseChange {
	return m.CaseChange{
		SuiteName:    v.key.suite,
		CaseName:     v.key.testCase,
		Identifier:   v.id,
		ErrorMessage: v.message,
	}
}

func statusLines(verdicts []caseVerdict) []string {
	lines := make([]string, 0, len(verdicts))

	for _, v := range verdicts {
		label := passLabel
		if !v.passed {
			label = failLabel
		}

		lines = append(lines, fmt.Sprintf("%s %s %s", label, v.key.suite, v.key.testCase))
	}

	return lines
}
