package dealsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryAccumulator(t *testing.T) {
	acc := newSummaryAccumulator()

	acc.add("SPOT-AUG", "OFFER-1")
	acc.add("SPOT-AUG", "OFFER-2")
	acc.add("SPOT-AUG", "OFFER-1")
	acc.add("MEGA-AUG", "OFFER-1")
	acc.add("SPOT-AUG", "OFFER-3")

	assert.Equal(t, []string{"OFFER-1", "OFFER-2", "OFFER-3"}, acc.offerCodes("SPOT-AUG"),
		"duplicates dropped, first-seen order kept")
	assert.Equal(t, []string{"OFFER-1"}, acc.offerCodes("MEGA-AUG"),
		"deals accumulate independently")
	assert.Nil(t, acc.offerCodes("FLASH-AUG"))
}

func TestSummaryAccumulator_BlankCodes(t *testing.T) {
	acc := newSummaryAccumulator()

	acc.add("SPOT-AUG", "")
	acc.add("SPOT-AUG", "   ")
	acc.add("SPOT-AUG", "OFFER-1")

	assert.Equal(t, []string{"OFFER-1"}, acc.offerCodes("SPOT-AUG"))
}
