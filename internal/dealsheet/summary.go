package dealsheet

import "strings"

// summaryAccumulator collects the distinct offer codes participating in
// each deal across all partner partitions, preserving first-seen order
// so reruns over the same input produce identical summary sheets.
type summaryAccumulator struct {
	codes map[string][]string
	seen  map[string]map[string]struct{}
}

func newSummaryAccumulator() *summaryAccumulator {
	return &summaryAccumulator{
		codes: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

// add records an offer code under a deal code. Blank offer codes and
// duplicates are dropped.
func (a *summaryAccumulator) add(dealCode, offerCode string) {
	if strings.TrimSpace(offerCode) == "" {
		return
	}

	seen := a.seen[dealCode]
	if seen == nil {
		seen = make(map[string]struct{})
		a.seen[dealCode] = seen
	}
	if _, dup := seen[offerCode]; dup {
		return
	}

	seen[offerCode] = struct{}{}
	a.codes[dealCode] = append(a.codes[dealCode], offerCode)
}

// offerCodes returns the accumulated codes for a deal in first-seen
// order, or nil when the deal collected none.
func (a *summaryAccumulator) offerCodes(dealCode string) []string {
	return a.codes[dealCode]
}
