package domain

import (
	"strings"

	m "verdict.dev/pkg/verdict/internal/model"
)

// UnknownName is reported for any identifier segment that cannot be found.
const UnknownName = "Unknown"

const (
	suiteSegmentMarker = "[class:"
	caseSegmentMarker  = "[method:"
	segmentEnd         = "]"
	emptyParams        = "()"
)

// ParseIdentifier extracts the suite and case names from an engine identifier.
// Missing segments degrade to UnknownName independently; it never fails.
// Segment values are unescaped after the closing bracket is found.
func ParseIdentifier(id m.TestIdentifier) (suite, testCase string) {
	raw := string(id)

	suite, ok := segment(raw, suiteSegmentMarker)
	if !ok {
		suite = UnknownName
	} else {
		suite = m.UnescapeSegment(suite)
	}

	testCase, ok = segment(raw, caseSegmentMarker)
	if !ok {
		testCase = UnknownName
	} else {
		testCase = m.UnescapeSegment(strings.TrimSuffix(testCase, emptyParams))
	}

	return suite, testCase
}

func segment(raw, marker string) (string, bool) {
	start := strings.Index(raw, marker)
	if start == -1 {
		return "", false
	}

	rest := raw[start+len(marker):]

	end := strings.Index(rest, segmentEnd)
	if end == -1 {
		return "", false
	}

	return rest[:end], true
}
