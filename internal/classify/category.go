package classify

import "sort"

// Category is a known classification category. Its string value is the token
// that appears in catalog classifications and zone match rules.
type Category string

const (
	CurrentAsset          Category = "Current Asset"
	NonCurrentAsset       Category = "Non-Current Asset"
	PlantAsset            Category = "Plant Asset"
	IntangibleAsset       Category = "Intangible Asset"
	CurrentLiability      Category = "Current Liability"
	NonCurrentLiability   Category = "Non-Current Liability"
	Equity                Category = "Equity"
	Revenue               Category = "Revenue"
	CostOfGoodsSold       Category = "Cost of Goods Sold"
	OperatingExpense      Category = "Operating Expense"
	OtherIncomeAndExpense Category = "Other Income and Expense"
	OperatingActivity     Category = "Operating"
	InvestingActivity     Category = "Investing"
	FinancingActivity     Category = "Financing"
)

// parents maps a subtype to the categories it also satisfies. Plant and
// intangible assets are non-current even though their labels don't say so.
var parents = map[Category][]Category{
	PlantAsset:      {NonCurrentAsset},
	IntangibleAsset: {NonCurrentAsset},
}

// known is every category, longest token first, so a scan always prefers
// "Non-Current Asset" over the "Current Asset" it contains.
var known = func() []Category {
	cats := []Category{
		CurrentAsset, NonCurrentAsset, PlantAsset, IntangibleAsset,
		CurrentLiability, NonCurrentLiability, Equity,
		Revenue, CostOfGoodsSold, OperatingExpense, OtherIncomeAndExpense,
		OperatingActivity, InvestingActivity, FinancingActivity,
	}
	sort.SliceStable(cats, func(i, j int) bool { return len(cats[i]) > len(cats[j]) })
	return cats
}()

// Known reports whether token names a category in the table.
func Known(token string) bool {
	for _, c := range known {
		if string(c) == token {
			return true
		}
	}
	return false
}

// Parents returns the categories c implies, not including c itself.
func (c Category) Parents() []Category {
	return parents[c]
}
