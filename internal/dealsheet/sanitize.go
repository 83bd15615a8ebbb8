package dealsheet

import (
	"fmt"
	"strings"
	"unicode"
)

// sheetNameLimits: partner ids contribute at most 15 runes to a sheet
// name, deal columns 10, and summary deal codes 20. Worst case stays
// inside Excel's 31-character sheet name limit.
const (
	partnerNameLimit = 15
	columnNameLimit  = 10
	dealCodeLimit    = 20

	summaryPrefix = "Summary_"
)

// sanitizeName keeps letters and digits only, truncated to maxLen runes.
func sanitizeName(s string, maxLen int) string {
	return sanitizeRunes(s, maxLen, false)
}

// sanitizeCode keeps letters, digits, '-' and '_', truncated to maxLen
// runes. Used for summary sheet names where deal codes commonly carry
// separators.
func sanitizeCode(s string, maxLen int) string {
	return sanitizeRunes(s, maxLen, true)
}

func sanitizeRunes(s string, maxLen int, allowSeparators bool) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		keep := unicode.IsLetter(r) || unicode.IsDigit(r)
		if !keep && allowSeparators {
			keep = r == '-' || r == '_'
		}
		if !keep {
			continue
		}
		b.WriteRune(r)
		n++
		if n == maxLen {
			break
		}
	}
	return b.String()
}

// dealSheetName builds the base name for a (partner, deal) sheet.
func dealSheetName(partnerID, dealColumn string) string {
	return sanitizeName(partnerID, partnerNameLimit) + "_" + sanitizeName(dealColumn, columnNameLimit)
}

// summarySheetName builds the base name for a deal code summary sheet.
func summarySheetName(dealCode string) string {
	return summaryPrefix + sanitizeCode(dealCode, dealCodeLimit)
}

// sheetNamer hands out workbook-unique sheet names. Sanitized bases can
// collide across partners or deal codes; collisions get a numeric suffix
// instead of silently overwriting an earlier sheet.
type sheetNamer struct {
	used map[string]int
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]int)}
}

// unique returns base unchanged the first time, and base with a numeric
// suffix on repeats.
func (n *sheetNamer) unique(base string) string {
	if base == "" {
		base = "Sheet"
	}

	count := n.used[base]
	n.used[base]++
	if count == 0 {
		return base
	}

	for {
		candidate := fmt.Sprintf("%s_%d", base, count+1)
		if n.used[candidate] == 0 {
			n.used[candidate] = 1
			return candidate
		}
		count++
	}
}
