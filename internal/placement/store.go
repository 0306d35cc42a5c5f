// Package placement tracks which accounts the learner has assigned to which
// zones during one statement session.
package placement

import (
	"slices"

	"github.com/cleared-dev/statementlab/internal/classify"
	"github.com/cleared-dev/statementlab/internal/model"
)

// Snapshot is a read-only copy of the placement state, keyed by zone ID.
// Every zone of the statement has an entry, empty or not.
type Snapshot map[string][]model.Account

// Count returns the number of placed accounts across all zones.
func (s Snapshot) Count() int {
	n := 0
	for _, accts := range s {
		n += len(accts)
	}
	return n
}

// Store is the placement state of one session. It is owned by a single
// session and is not safe for concurrent use.
type Store struct {
	zones  []model.Zone
	placed map[string][]model.Account
	// where maps an account title to the zone holding it.
	where map[string]string
}

// NewStore creates an empty store for the given zones.
func NewStore(zones []model.Zone) *Store {
	s := &Store{zones: slices.Clone(zones)}
	s.Reset()
	return s
}

// Place assigns account to the zone if the zone exists, the account is not
// already placed anywhere, and the account's classification matches the zone.
// Any rejection leaves the store unchanged.
func (s *Store) Place(account model.Account, zoneID string) Outcome {
	out := Outcome{Account: account, ZoneID: zoneID}

	zone, ok := s.zone(zoneID)
	if !ok {
		out.Reason = ReasonUnknownZone
		return out
	}
	out.Zone = zone

	if held, ok := s.where[account.Title]; ok {
		out.Reason = ReasonDuplicate
		out.PlacedIn = held
		return out
	}

	if !classify.Matches(account, zone) {
		out.Reason = ReasonMismatch
		return out
	}

	s.placed[zoneID] = append(s.placed[zoneID], account)
	s.where[account.Title] = zoneID
	out.Reason = ReasonAccepted
	return out
}

// Remove takes the account out of the zone. It reports whether anything was
// removed; removing an account that is not in the zone is a no-op.
func (s *Store) Remove(account model.Account, zoneID string) bool {
	accts := s.placed[zoneID]
	i := slices.IndexFunc(accts, func(a model.Account) bool { return a.Title == account.Title })
	if i < 0 {
		return false
	}
	s.placed[zoneID] = slices.Delete(accts, i, i+1)
	delete(s.where, account.Title)
	return true
}

// Reset empties every zone.
func (s *Store) Reset() {
	s.placed = make(map[string][]model.Account, len(s.zones))
	for _, z := range s.zones {
		s.placed[z.ID] = nil
	}
	s.where = make(map[string]string)
}

// Snapshot returns a copy of the current placements.
func (s *Store) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.zones))
	for _, z := range s.zones {
		snap[z.ID] = slices.Clone(s.placed[z.ID])
		if snap[z.ID] == nil {
			snap[z.ID] = []model.Account{}
		}
	}
	return snap
}

// ZoneOf returns the ID of the zone holding the account title.
func (s *Store) ZoneOf(title string) (string, bool) {
	z, ok := s.where[title]
	return z, ok
}

// IsPlaced reports whether the account title is in any zone.
func (s *Store) IsPlaced(title string) bool {
	_, ok := s.where[title]
	return ok
}

// Len returns the number of placed accounts.
func (s *Store) Len() int {
	return len(s.where)
}

// Zones returns the zones the store was built for.
func (s *Store) Zones() []model.Zone {
	return slices.Clone(s.zones)
}

func (s *Store) zone(zoneID string) (model.Zone, bool) {
	for _, z := range s.zones {
		if z.ID == zoneID {
			return z, true
		}
	}
	return model.Zone{}, false
}
