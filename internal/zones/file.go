package zones

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/statementlab/internal/id"
	"github.com/cleared-dev/statementlab/internal/model"
)

// File is the on-disk zones.yaml layout, keyed by statement slug.
type File struct {
	Statements map[string][]ZoneDef `yaml:"statements"`
}

// ZoneDef is one zone entry. ID may be omitted and is then derived from Label.
type ZoneDef struct {
	ID         string   `yaml:"id,omitempty"`
	Label      string   `yaml:"label"`
	ValidTypes []string `yaml:"valid_types"`
}

// Load reads a zones.yaml file. Statement types the file does not mention keep
// their default zones.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zones: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing zones: %w", err)
	}

	layout := Defaults()
	for key, defs := range f.Statements {
		st, err := model.ParseStatementType(key)
		if err != nil {
			return nil, fmt.Errorf("zones file: %w", err)
		}
		zs := make([]model.Zone, 0, len(defs))
		for _, d := range defs {
			zoneID := d.ID
			if zoneID == "" {
				zoneID = id.FormatZoneID(d.Label)
			}
			zs = append(zs, model.Zone{ID: zoneID, Label: d.Label, MatchRules: d.ValidTypes})
		}
		layout[st] = zs
	}

	r, err := New(layout)
	if err != nil {
		return nil, fmt.Errorf("validating zones: %w", err)
	}
	return r, nil
}

// Save writes the registry as a zones.yaml file.
func Save(path string, r *Registry) error {
	f := File{Statements: make(map[string][]ZoneDef)}
	for _, st := range r.Statements() {
		for _, z := range r.Zones(st) {
			f.Statements[string(st)] = append(f.Statements[string(st)], ZoneDef{
				ID:         z.ID,
				Label:      z.Label,
				ValidTypes: z.MatchRules,
			})
		}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling zones: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing zones: %w", err)
	}
	return nil
}
