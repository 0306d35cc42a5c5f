package placement

import (
	"fmt"

	"github.com/cleared-dev/statementlab/internal/model"
)

// Reason says why a placement attempt was accepted or rejected.
type Reason string

const (
	ReasonAccepted         Reason = "accepted"
	ReasonUnknownZone      Reason = "unknown-zone"
	ReasonMismatch         Reason = "mismatch"
	ReasonDuplicate        Reason = "duplicate"
	ReasonNotInStatement   Reason = "not-in-statement"
	ReasonMalformedPayload Reason = "malformed-payload"
)

// Outcome reports the result of a placement attempt. Rejections are ordinary
// outcomes; the session continues after any of them.
type Outcome struct {
	Reason  Reason
	Account model.Account
	Zone    model.Zone // zero when the zone is unknown
	ZoneID  string     // as requested
	// PlacedIn is the zone that already holds the account, for ReasonDuplicate.
	PlacedIn string
}

// Accepted reports whether the account was placed.
func (o Outcome) Accepted() bool {
	return o.Reason == ReasonAccepted
}

// Message renders learner-facing feedback for the outcome.
func (o Outcome) Message() string {
	switch o.Reason {
	case ReasonAccepted:
		return fmt.Sprintf("Correct! %s → %s", o.Account.Title, o.Zone.Label)
	case ReasonMismatch:
		return fmt.Sprintf("Incorrect placement. %s doesn't belong in %s", o.Account.Title, o.Zone.Label)
	case ReasonDuplicate:
		return fmt.Sprintf("%s is already placed in %s", o.Account.Title, o.PlacedIn)
	case ReasonUnknownZone:
		return fmt.Sprintf("No zone %q on this statement", o.ZoneID)
	case ReasonNotInStatement:
		return fmt.Sprintf("%s is not an account on this statement", o.Account.Title)
	case ReasonMalformedPayload:
		return "Could not read the dragged account"
	default:
		return string(o.Reason)
	}
}

// Err returns nil for an accepted outcome and a *RejectionError otherwise.
func (o Outcome) Err() error {
	if o.Accepted() {
		return nil
	}
	return &RejectionError{Reason: o.Reason, Title: o.Account.Title, ZoneID: o.ZoneID}
}

// RejectionError describes a rejected placement.
type RejectionError struct {
	Reason Reason
	Title  string
	ZoneID string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("placement rejected (%s): %q -> %q", e.Reason, e.Title, e.ZoneID)
}
