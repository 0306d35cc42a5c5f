package session

import (
	"fmt"

	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/payload"
	"github.com/cleared-dev/statementlab/internal/placement"
)

type dragState struct {
	title string
}

// BeginDrag starts dragging an account and returns the transport payload the
// drop target will receive.
func (s *Session) BeginDrag(account model.Account) ([]byte, error) {
	data, err := payload.Encode(account)
	if err != nil {
		return nil, fmt.Errorf("starting drag: %w", err)
	}
	s.drag = &dragState{title: account.Title}
	return data, nil
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.drag != nil
}

// CancelDrag ends a drag without placing anything, as when the account is
// dropped outside every zone.
func (s *Session) CancelDrag() {
	if s.drag != nil {
		s.logger.Debug("drag cancelled", "account", s.drag.title)
	}
	s.drag = nil
}

// Drop decodes the payload and places the account in the zone. A payload that
// cannot be decoded is reported as ReasonMalformedPayload and changes nothing.
// The drag ends whatever the outcome.
func (s *Session) Drop(data []byte, zoneID string) placement.Outcome {
	s.drag = nil

	account, err := payload.Decode(data)
	if err != nil {
		s.logger.Warn("ignoring drop", "zone", zoneID, "err", err)
		return placement.Outcome{Reason: placement.ReasonMalformedPayload, ZoneID: zoneID}
	}
	return s.Place(account, zoneID)
}
