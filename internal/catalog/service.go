// Package catalog loads the read-only chart of accounts and splits it into
// per-statement account universes.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/statementlab/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts    []model.Account
	byStatement map[model.StatementType][]model.Account
	byTitle     map[model.StatementType]map[string]model.Account
}

// NewService indexes accounts by statement type. Account titles must be unique
// within a statement.
func NewService(accounts []model.Account) (*Service, error) {
	s := &Service{
		accounts:    accounts,
		byStatement: make(map[model.StatementType][]model.Account),
		byTitle:     make(map[model.StatementType]map[string]model.Account),
	}
	for _, a := range accounts {
		st, ok := a.StatementType()
		if !ok {
			continue
		}
		titles := s.byTitle[st]
		if titles == nil {
			titles = make(map[string]model.Account)
			s.byTitle[st] = titles
		}
		if _, dup := titles[a.Title]; dup {
			return nil, fmt.Errorf("duplicate account title %q in %s", a.Title, st.CatalogName())
		}
		titles[a.Title] = a
		s.byStatement[st] = append(s.byStatement[st], a)
	}
	return s, nil
}

// Load reads a catalog file. The format is chosen by extension: .csv, or JSON
// for anything else.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	var accts []model.Account
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		accts, err = ReadCSV(f)
	} else {
		accts, err = ReadJSON(f)
	}
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts)
}

// All returns every account in catalog order, including any whose statement
// literal is not recognized.
func (s *Service) All() []model.Account {
	return s.accounts
}

// ForStatement returns the account universe for a statement type in catalog
// order. The returned slice is a copy.
func (s *Service) ForStatement(st model.StatementType) []model.Account {
	src := s.byStatement[st]
	out := make([]model.Account, len(src))
	copy(out, src)
	return out
}

// Get returns an account by statement and title.
func (s *Service) Get(st model.StatementType, title string) (model.Account, bool) {
	a, ok := s.byTitle[st][title]
	return a, ok
}

// Save writes the catalog to path, as CSV when the extension is .csv and as
// JSON otherwise.
func (s *Service) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating catalog dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		err = WriteCSV(f, s.accounts)
	} else {
		err = WriteJSON(f, s.accounts)
	}
	if err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
