// Package payload encodes an account for the trip between drag start and drop.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cleared-dev/statementlab/internal/model"
)

// ErrMalformed is returned when a payload cannot be decoded into an account.
var ErrMalformed = errors.New("malformed account payload")

type wire struct {
	AccountTitle       *string `json:"accountTitle"`
	Classification     *string `json:"classification"`
	FinancialStatement *string `json:"financialStatement"`
	NormalBalance      *string `json:"normalBalance"`
}

// Encode serializes an account using the catalog field names. Every field
// must be valid UTF-8 so that Decode returns the account unchanged.
func Encode(a model.Account) ([]byte, error) {
	for _, f := range []string{a.Title, a.Classification, a.Statement, a.NormalBalance} {
		if !utf8.ValidString(f) {
			return nil, fmt.Errorf("encoding account payload: invalid UTF-8 in %q", f)
		}
	}
	data, err := json.Marshal(wire{
		AccountTitle:       &a.Title,
		Classification:     &a.Classification,
		FinancialStatement: &a.Statement,
		NormalBalance:      &a.NormalBalance,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding account payload: %w", err)
	}
	return data, nil
}

// Decode parses a payload produced by Encode. Empty input, invalid UTF-8,
// invalid JSON, unknown fields, trailing data and missing fields all wrap ErrMalformed.
func Decode(data []byte) (model.Account, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return model.Account{}, fmt.Errorf("%w: empty", ErrMalformed)
	}
	if !utf8.Valid(data) {
		return model.Account{}, fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wire
	if err := dec.Decode(&w); err != nil {
		return model.Account{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return model.Account{}, fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	if w.AccountTitle == nil || w.Classification == nil || w.FinancialStatement == nil || w.NormalBalance == nil {
		return model.Account{}, fmt.Errorf("%w: missing field", ErrMalformed)
	}
	if *w.AccountTitle == "" {
		return model.Account{}, fmt.Errorf("%w: empty account title", ErrMalformed)
	}

	return model.Account{
		Title:          *w.AccountTitle,
		Classification: *w.Classification,
		Statement:      *w.FinancialStatement,
		NormalBalance:  *w.NormalBalance,
	}, nil
}
