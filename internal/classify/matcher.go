// Package classify decides whether an account belongs in a zone.
//
// Classifications are tokenized against a fixed category table using a
// leftmost-longest scan, so a token that is a substring of a longer category
// ("Current Asset" inside "Non-Current Asset") is never reported on its own.
// Rule tokens that are not in the table fall back to plain substring matching.
package classify

import (
	"strings"

	"github.com/cleared-dev/statementlab/internal/model"
)

// Categories returns the categories found in a classification, in order of
// appearance, followed by any parent categories they imply. Duplicates are
// dropped.
func Categories(classification string) []Category {
	var found []Category
	seen := make(map[Category]bool)
	add := func(c Category) {
		if !seen[c] {
			seen[c] = true
			found = append(found, c)
		}
	}

	for i := 0; i < len(classification); {
		c, ok := longestAt(classification, i)
		if !ok {
			i++
			continue
		}
		add(c)
		i += len(c)
	}

	for _, c := range found {
		for _, p := range c.Parents() {
			add(p)
		}
	}
	return found
}

func longestAt(s string, i int) (Category, bool) {
	rest := s[i:]
	for _, c := range known {
		if strings.HasPrefix(rest, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Matches reports whether the account satisfies at least one of the zone's
// match rules.
func Matches(account model.Account, zone model.Zone) bool {
	cats := Categories(account.Classification)
	for _, rule := range zone.MatchRules {
		if matchesRule(account.Classification, cats, rule) {
			return true
		}
	}
	return false
}

func matchesRule(classification string, cats []Category, rule string) bool {
	if rule == "" {
		return false
	}
	if !Known(rule) {
		return strings.Contains(classification, rule)
	}
	for _, c := range cats {
		if string(c) == rule {
			return true
		}
	}
	return false
}

// Family is the broad account family used to group and colour accounts.
type Family string

const (
	FamilyAsset     Family = "asset"
	FamilyLiability Family = "liability"
	FamilyEquity    Family = "equity"
	FamilyRevenue   Family = "revenue"
	FamilyExpense   Family = "expense"
	FamilyOther     Family = "other"
)

// FamilyOf returns the family of a classification. The checks run in a fixed
// order, so "Other Income and Expense" is an expense.
func FamilyOf(classification string) Family {
	switch {
	case strings.Contains(classification, "Asset"):
		return FamilyAsset
	case strings.Contains(classification, "Liability"):
		return FamilyLiability
	case strings.Contains(classification, "Equity"):
		return FamilyEquity
	case strings.Contains(classification, "Revenue"):
		return FamilyRevenue
	case strings.Contains(classification, "Expense"), strings.Contains(classification, "Cost of Goods Sold"):
		return FamilyExpense
	default:
		return FamilyOther
	}
}
