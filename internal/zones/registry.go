// Package zones holds the ordered zone layout of each statement type.
package zones

import (
	"fmt"
	"slices"

	"github.com/cleared-dev/statementlab/internal/id"
	"github.com/cleared-dev/statementlab/internal/model"
)

// Registry maps each statement type to its ordered zones. It is immutable
// after construction; accessors return copies.
type Registry struct {
	layout map[model.StatementType][]model.Zone
}

// New validates a layout and builds a Registry from it. Zone IDs must be
// canonical and unique within a statement, and every zone needs at least one
// match rule.
func New(layout map[model.StatementType][]model.Zone) (*Registry, error) {
	r := &Registry{layout: make(map[model.StatementType][]model.Zone, len(layout))}
	for st, zs := range layout {
		if !st.Valid() {
			return nil, fmt.Errorf("unknown statement type %q", st)
		}
		seen := make(map[string]bool, len(zs))
		for i, z := range zs {
			if _, err := id.ParseZoneID(z.ID); err != nil {
				return nil, fmt.Errorf("%s zone %d: %w", st, i+1, err)
			}
			if seen[z.ID] {
				return nil, fmt.Errorf("%s: duplicate zone ID %q", st, z.ID)
			}
			seen[z.ID] = true
			if len(z.MatchRules) == 0 {
				return nil, fmt.Errorf("%s zone %q: no match rules", st, z.ID)
			}
		}
		r.layout[st] = cloneZones(zs)
	}
	return r, nil
}

// Default returns the registry with the built-in layout.
func Default() *Registry {
	r, err := New(Defaults())
	if err != nil {
		panic("default zones: " + err.Error())
	}
	return r
}

// Zones returns the zones of a statement type in display order.
func (r *Registry) Zones(st model.StatementType) []model.Zone {
	return cloneZones(r.layout[st])
}

// Zone looks up a zone by ID within a statement type.
func (r *Registry) Zone(st model.StatementType, zoneID string) (model.Zone, bool) {
	for _, z := range r.layout[st] {
		if z.ID == zoneID {
			return cloneZone(z), true
		}
	}
	return model.Zone{}, false
}

// Statements lists the statement types that have zones, in display order.
func (r *Registry) Statements() []model.StatementType {
	var out []model.StatementType
	for _, st := range model.StatementTypes {
		if len(r.layout[st]) > 0 {
			out = append(out, st)
		}
	}
	return out
}

func cloneZones(zs []model.Zone) []model.Zone {
	if zs == nil {
		return nil
	}
	out := make([]model.Zone, len(zs))
	for i, z := range zs {
		out[i] = cloneZone(z)
	}
	return out
}

func cloneZone(z model.Zone) model.Zone {
	z.MatchRules = slices.Clone(z.MatchRules)
	return z
}
