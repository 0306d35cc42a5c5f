// Package solution computes the correct zone for every account, independent
// of what the learner has placed.
package solution

import (
	"github.com/cleared-dev/statementlab/internal/classify"
	"github.com/cleared-dev/statementlab/internal/model"
)

// ZoneSolution is the expected contents of one zone.
type ZoneSolution struct {
	Zone     model.Zone
	Accounts []model.Account
}

// For returns the accounts of the universe that belong in zone, in universe
// order.
func For(zone model.Zone, universe []model.Account) []model.Account {
	var out []model.Account
	for _, a := range universe {
		if classify.Matches(a, zone) {
			out = append(out, a)
		}
	}
	return out
}

// All returns the solution for every zone, in zone order.
func All(zones []model.Zone, universe []model.Account) []ZoneSolution {
	out := make([]ZoneSolution, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneSolution{Zone: z, Accounts: For(z, universe)})
	}
	return out
}

// Unassigned returns the accounts no zone accepts. A non-empty result means
// the catalog and zone layout disagree.
func Unassigned(zones []model.Zone, universe []model.Account) []model.Account {
	var out []model.Account
	for _, a := range universe {
		matched := false
		for _, z := range zones {
			if classify.Matches(a, z) {
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, a)
		}
	}
	return out
}
