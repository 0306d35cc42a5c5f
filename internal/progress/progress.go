// Package progress counts how far a learner has got through a statement.
package progress

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statementlab/internal/placement"
)

// Report is a placement count against the size of the account universe. It
// counts placements, not correct placements; the store never holds an
// incorrect one.
type Report struct {
	Placed   int
	Expected int
}

// Compute builds a Report from a snapshot and the expected account count.
func Compute(snap placement.Snapshot, expected int) Report {
	return Report{Placed: snap.Count(), Expected: expected}
}

// Percent returns Placed/Expected as a percentage rounded to two places.
// An empty universe reports zero.
func (r Report) Percent() decimal.Decimal {
	if r.Expected == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.Placed)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(r.Expected))).
		Round(2)
}

// Complete reports whether every expected account has been placed.
func (r Report) Complete() bool {
	return r.Expected > 0 && r.Placed >= r.Expected
}

// Remaining returns how many accounts are still unplaced.
func (r Report) Remaining() int {
	if r.Placed >= r.Expected {
		return 0
	}
	return r.Expected - r.Placed
}

// Message renders the check-answers feedback.
func (r Report) Message() string {
	return fmt.Sprintf("You've placed %d out of %d accounts", r.Placed, r.Expected)
}
