package dealsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "plain stays", input: "Spotlight", maxLen: 10, expected: "Spotlight"},
		{name: "specials stripped", input: "A/B 123-456", maxLen: 15, expected: "AB123456"},
		{name: "truncated after stripping", input: "Partner 1234567890123456", maxLen: 15, expected: "Partner12345678"},
		{name: "unicode letters kept", input: "متجر-42", maxLen: 10, expected: "متجر42"},
		{name: "only specials", input: "///***", maxLen: 10, expected: ""},
		{name: "spaces stripped", input: "Spotlight %", maxLen: 10, expected: "Spotlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input, tt.maxLen))
		})
	}
}

func TestSanitizeCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "separators kept", input: "SPOT-AUG_24", maxLen: 20, expected: "SPOT-AUG_24"},
		{name: "other specials stripped", input: "SPOT AUG/24", maxLen: 20, expected: "SPOTAUG24"},
		{name: "truncated", input: "VERY-LONG-DEAL-CODE-2024-08", maxLen: 20, expected: "VERY-LONG-DEAL-CODE-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeCode(tt.input, tt.maxLen))
		})
	}
}

func TestDealSheetName(t *testing.T) {
	assert.Equal(t, "P1_Spotlight", dealSheetName("P1", "Spotlight"))
	assert.Equal(t, "AB1234567890123_Spotlight", dealSheetName("A/B 1234567890123", "Spotlight %"))
	assert.Equal(t, "_Spotlight", dealSheetName("///", "Spotlight"))
}

func TestSummarySheetName(t *testing.T) {
	assert.Equal(t, "Summary_SPOT-AUG", summarySheetName("SPOT-AUG"))
	assert.Equal(t, "Summary_LONG-CODE-1234567890", summarySheetName("LONG-CODE-1234567890-AND-MORE"))
}

func TestSheetNamer(t *testing.T) {
	n := newSheetNamer()

	assert.Equal(t, "P1_Spotlight", n.unique("P1_Spotlight"))
	assert.Equal(t, "P1_Spotlight_2", n.unique("P1_Spotlight"), "collision gets numeric suffix")
	assert.Equal(t, "P1_Spotlight_3", n.unique("P1_Spotlight"))
	assert.Equal(t, "P2_Mega", n.unique("P2_Mega"))
}

func TestSheetNamer_SuffixCollision(t *testing.T) {
	n := newSheetNamer()

	assert.Equal(t, "A_2", n.unique("A_2"), "explicit base that looks like a suffix")
	assert.Equal(t, "A", n.unique("A"))
	assert.Equal(t, "A_2_2", n.unique("A_2"), "suffixing avoids the taken name")
}

func TestSheetNamer_EmptyBase(t *testing.T) {
	n := newSheetNamer()

	assert.Equal(t, "Sheet", n.unique(""))
	assert.Equal(t, "Sheet_2", n.unique(""))
}
