package model

// CaseChange describes how one case moved between a baseline and a candidate run.
type CaseChange struct {
	SuiteName    string
	CaseName     string
	Identifier   string
	ErrorMessage *string
}

// Comparison is the result of comparing a candidate report against a baseline.
type Comparison struct {
	// Detected lists cases that passed in the baseline and fail in the candidate.
	Detected []CaseChange
	// Fixed lists cases that failed in the baseline and pass in the candidate.
	Fixed []CaseChange
	// Missing lists baseline cases absent from the candidate.
	Missing []CaseChange
	// Compared is the number of cases present in both reports.
	Compared int
	// Score is the fraction of baseline-passing compared cases that fail in the candidate.
	Score float64
	// BaselineLines and CandidateLines are per-case status lines used for diffs.
	BaselineLines  []string
	CandidateLines []string
}
