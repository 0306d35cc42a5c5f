package zones

import "github.com/cleared-dev/statementlab/internal/model"

// Defaults returns the built-in zone layout for every statement type.
func Defaults() map[model.StatementType][]model.Zone {
	return map[model.StatementType][]model.Zone{
		model.BalanceSheet: {
			{ID: "current-assets", Label: "Current Assets", MatchRules: []string{"Current Asset"}},
			{ID: "non-current-assets", Label: "Non-Current Assets", MatchRules: []string{"Plant Asset", "Intangible Asset", "Non-Current Asset"}},
			{ID: "current-liabilities", Label: "Current Liabilities", MatchRules: []string{"Current Liability"}},
			{ID: "non-current-liabilities", Label: "Non-Current Liabilities", MatchRules: []string{"Non-Current Liability"}},
			{ID: "equity", Label: "Equity", MatchRules: []string{"Equity"}},
		},
		model.IncomeStatement: {
			{ID: "revenues", Label: "Revenues", MatchRules: []string{"Revenue"}},
			{ID: "cogs", Label: "Cost of Goods Sold", MatchRules: []string{"Cost of Goods Sold"}},
			{ID: "operating-expenses", Label: "Operating Expenses", MatchRules: []string{"Operating Expense"}},
			{ID: "other-income", Label: "Other Income and Expense", MatchRules: []string{"Other Income and Expense"}},
		},
		model.CashFlow: {
			{ID: "operating", Label: "Operating Activities", MatchRules: []string{"Operating"}},
			{ID: "investing", Label: "Investing Activities", MatchRules: []string{"Investing"}},
			{ID: "financing", Label: "Financing Activities", MatchRules: []string{"Financing"}},
		},
	}
}
