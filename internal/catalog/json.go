package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleared-dev/statementlab/internal/model"
)

// record is the wire shape of one catalog entry.
type record struct {
	AccountTitle       string `json:"accountTitle"`
	Classification     string `json:"classification"`
	FinancialStatement string `json:"financialStatement"`
	NormalBalance      string `json:"normalBalance"`
}

type document struct {
	ChartOfAccounts []record `json:"chartOfAccounts"`
}

// ReadJSON reads a {"chartOfAccounts": [...]} document.
func ReadJSON(r io.Reader) ([]model.Account, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding accounts JSON: %w", err)
	}

	accounts := make([]model.Account, 0, len(doc.ChartOfAccounts))
	for _, rec := range doc.ChartOfAccounts {
		accounts = append(accounts, model.Account{
			Title:          rec.AccountTitle,
			Classification: rec.Classification,
			Statement:      rec.FinancialStatement,
			NormalBalance:  rec.NormalBalance,
		})
	}
	return accounts, nil
}

// WriteJSON writes accounts in the same document shape ReadJSON accepts.
func WriteJSON(w io.Writer, accounts []model.Account) error {
	doc := document{ChartOfAccounts: make([]record, 0, len(accounts))}
	for _, a := range accounts {
		doc.ChartOfAccounts = append(doc.ChartOfAccounts, record{
			AccountTitle:       a.Title,
			Classification:     a.Classification,
			FinancialStatement: a.Statement,
			NormalBalance:      a.NormalBalance,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding accounts JSON: %w", err)
	}
	return nil
}
