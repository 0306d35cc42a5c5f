package catalog

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/statementlab/internal/model"
)

const (
	numFields         = 4
	colTitle          = 0
	colClassification = 1
	colStatement      = 2
	colNormalBalance  = 3
)

// ReadCSV reads a chart-of-accounts.csv with a header row.
func ReadCSV(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for _, rec := range records[1:] {
		accounts = append(accounts, UnmarshalAccount(rec))
	}
	return accounts, nil
}

// WriteCSV writes chart-of-accounts.csv.
func WriteCSV(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_title", "classification", "financial_statement", "normal_balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colTitle] = acct.Title
	row[colClassification] = acct.Classification
	row[colStatement] = acct.Statement
	row[colNormalBalance] = acct.NormalBalance
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The reader has already
// enforced the field count.
func UnmarshalAccount(record []string) model.Account {
	return model.Account{
		Title:          record[colTitle],
		Classification: record[colClassification],
		Statement:      record[colStatement],
		NormalBalance:  record[colNormalBalance],
	}
}
