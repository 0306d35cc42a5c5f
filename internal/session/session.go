// Package session is the unit a learner interacts with: one statement type,
// its zones, its account universe and the placements made so far.
package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/cleared-dev/statementlab/internal/catalog"
	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/placement"
	"github.com/cleared-dev/statementlab/internal/progress"
	"github.com/cleared-dev/statementlab/internal/solution"
	"github.com/cleared-dev/statementlab/internal/zones"
)

// Session holds the state of one statement type. Switching statement type
// replaces the zones, universe and store wholesale. A Session is driven by
// one user and is not safe for concurrent use.
type Session struct {
	id        string
	catalog   *catalog.Service
	registry  *zones.Registry
	statement model.StatementType
	zones     []model.Zone
	universe  []model.Account
	store     *placement.Store
	drag      *dragState
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New starts a session on the given statement type.
func New(cat *catalog.Service, reg *zones.Registry, st model.StatementType, opts ...Option) (*Session, error) {
	s := &Session{
		id:       uuid.NewString(),
		catalog:  cat,
		registry: reg,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Switch(st); err != nil {
		return nil, err
	}
	return s, nil
}

// ID identifies the session in attempt logs.
func (s *Session) ID() string {
	return s.id
}

// Switch discards all placements and loads the zones and account universe of
// st. Switching to the current statement also starts fresh.
func (s *Session) Switch(st model.StatementType) error {
	if !st.Valid() {
		return fmt.Errorf("switching statement: unknown statement type %q", st)
	}
	zs := s.registry.Zones(st)
	if len(zs) == 0 {
		return fmt.Errorf("switching statement: no zones defined for %s", st)
	}

	s.statement = st
	s.zones = zs
	s.universe = s.catalog.ForStatement(st)
	s.store = placement.NewStore(zs)
	s.drag = nil

	s.logger.Debug("statement switched", "statement", st, "zones", len(zs), "accounts", len(s.universe))
	return nil
}

// Statement returns the active statement type.
func (s *Session) Statement() model.StatementType {
	return s.statement
}

// Zones returns the active zones in display order.
func (s *Session) Zones() []model.Zone {
	return s.registry.Zones(s.statement)
}

// Universe returns every account of the active statement in catalog order.
func (s *Session) Universe() []model.Account {
	return s.catalog.ForStatement(s.statement)
}

// Account looks up an account of the active statement by title.
func (s *Session) Account(title string) (model.Account, bool) {
	return s.catalog.Get(s.statement, title)
}

// Place assigns an account to a zone. The account must be the catalog record
// of the active statement with that title; anything else is rejected as
// ReasonNotInStatement once the zone is known to exist.
func (s *Session) Place(account model.Account, zoneID string) placement.Outcome {
	var out placement.Outcome
	if zone, ok := s.registry.Zone(s.statement, zoneID); ok && !s.inUniverse(account) {
		out = placement.Outcome{Reason: placement.ReasonNotInStatement, Account: account, Zone: zone, ZoneID: zoneID}
	} else {
		out = s.store.Place(account, zoneID)
	}
	if out.Accepted() {
		s.logger.Debug("placed", "account", account.Title, "zone", zoneID)
	} else {
		s.logger.Debug("placement rejected", "account", account.Title, "zone", zoneID, "reason", out.Reason)
	}
	return out
}

func (s *Session) inUniverse(account model.Account) bool {
	known, ok := s.catalog.Get(s.statement, account.Title)
	return ok && known == account
}

// Remove takes an account out of a zone. It is a no-op if the account is not
// there.
func (s *Session) Remove(account model.Account, zoneID string) bool {
	removed := s.store.Remove(account, zoneID)
	if removed {
		s.logger.Debug("removed", "account", account.Title, "zone", zoneID)
	}
	return removed
}

// Reset clears every zone and returns the confirmation message.
func (s *Session) Reset() string {
	s.store.Reset()
	s.drag = nil
	s.logger.Debug("canvas cleared", "statement", s.statement)
	return "Canvas cleared"
}

// Snapshot returns a copy of the current placements.
func (s *Session) Snapshot() placement.Snapshot {
	return s.store.Snapshot()
}

// Progress counts placements against the active universe.
func (s *Session) Progress() progress.Report {
	return progress.Compute(s.store.Snapshot(), len(s.universe))
}

// Solutions returns the expected contents of every zone. It does not look at
// the current placements.
func (s *Session) Solutions() []solution.ZoneSolution {
	return solution.All(s.Zones(), s.Universe())
}

// Pool returns the unplaced accounts whose title contains search, ignoring
// case. An empty search matches every unplaced account.
func (s *Session) Pool(search string) []model.Account {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(search))

	var out []model.Account
	for _, a := range s.universe {
		if s.store.IsPlaced(a.Title) {
			continue
		}
		if needle != "" && !strings.Contains(fold.String(a.Title), needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// PoolMessage is the empty-pool hint shown instead of a list.
func PoolMessage(search string) string {
	if strings.TrimSpace(search) != "" {
		return "No accounts found"
	}
	return "All accounts placed!"
}
