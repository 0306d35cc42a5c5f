package model

import (
	"fmt"
	"strings"
)

// StatementType identifies one of the three financial statements.
type StatementType string

const (
	BalanceSheet    StatementType = "balance-sheet"
	IncomeStatement StatementType = "income-statement"
	CashFlow        StatementType = "cash-flow"
)

// Catalog literals used in the financialStatement field.
const (
	CatalogBalanceSheet    = "Statement of Financial Position"
	CatalogIncomeStatement = "Income Statement"
	CatalogCashFlow        = "Statement of Cash Flows"
)

// StatementTypes lists every statement type in display order.
var StatementTypes = []StatementType{BalanceSheet, IncomeStatement, CashFlow}

// CatalogName returns the financialStatement literal for the statement type.
func (s StatementType) CatalogName() string {
	switch s {
	case BalanceSheet:
		return CatalogBalanceSheet
	case IncomeStatement:
		return CatalogIncomeStatement
	case CashFlow:
		return CatalogCashFlow
	default:
		return ""
	}
}

// Label is the human-readable tab name.
func (s StatementType) Label() string {
	switch s {
	case BalanceSheet:
		return "Balance Sheet"
	case IncomeStatement:
		return "Income Statement"
	case CashFlow:
		return "Cash Flow"
	default:
		return string(s)
	}
}

// Valid reports whether s is a known statement type.
func (s StatementType) Valid() bool {
	return s.CatalogName() != ""
}

// ParseStatementType accepts a slug ("cash-flow"), a short alias ("cf") or a
// catalog literal, case-insensitively.
func ParseStatementType(s string) (StatementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "balance-sheet", "bs", "balance", "statement of financial position":
		return BalanceSheet, nil
	case "income-statement", "is", "income":
		return IncomeStatement, nil
	case "cash-flow", "cf", "cashflow", "statement of cash flows":
		return CashFlow, nil
	}
	return "", fmt.Errorf("unknown statement type %q", s)
}

// StatementFromCatalog maps a financialStatement literal to its type. The
// comparison is exact; catalog data is taken as pre-validated.
func StatementFromCatalog(name string) (StatementType, bool) {
	switch name {
	case CatalogBalanceSheet:
		return BalanceSheet, true
	case CatalogIncomeStatement:
		return IncomeStatement, true
	case CatalogCashFlow:
		return CashFlow, true
	}
	return "", false
}
