// Package stats tracks drill results.
package stats

import (
	"fmt"
	"strconv"
)

// Tally counts correct answers over a fixed number of rounds.
type Tally struct {
	total    int
	correct  int
	recorded int
}

// NewTally returns a tally for total rounds.
func NewTally(total int) *Tally {
	if total < 0 {
		total = 0
	}
	return &Tally{total: total}
}

// Record scores one finished round.
func (t *Tally) Record(correct bool) error {
	if t.recorded >= t.total {
		return fmt.Errorf("all %d rounds already recorded", t.total)
	}
	t.recorded++
	if correct {
		t.correct++
	}
	return nil
}

// Total returns the number of rounds in the session.
func (t *Tally) Total() int {
	return t.total
}

// Correct returns the number of correct answers so far.
func (t *Tally) Correct() int {
	return t.correct
}

// Recorded returns the number of rounds scored so far.
func (t *Tally) Recorded() int {
	return t.recorded
}

// Percent returns correct/total as a percentage, or 0 for an empty session.
func (t *Tally) Percent() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.correct) / float64(t.total) * 100
}

// PercentString formats Percent with two fractional digits.
func (t *Tally) PercentString() string {
	return strconv.FormatFloat(t.Percent(), 'f', 2, 64)
}
