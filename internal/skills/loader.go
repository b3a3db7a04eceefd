package skills

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var embeddedManifest string

//go:embed skill-rules.json
var embeddedRules string

//go:embed typescript_strict.md
var embeddedTypeScriptStrict string

//go:embed react_components.md
var embeddedReactComponents string

//go:embed testing_discipline.md
var embeddedTestingDiscipline string

// skillFiles maps manifest filenames to their embedded content.
var skillFiles = map[string]string{
	"typescript_strict.md":  embeddedTypeScriptStrict,
	"react_components.md":   embeddedReactComponents,
	"testing_discipline.md": embeddedTestingDiscipline,
}

// LoadManifest parses the embedded manifest YAML.
func LoadManifest() (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal([]byte(embeddedManifest), &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse skills manifest: %w", err)
	}
	return &manifest, nil
}

// LoadSkills loads all bundled skill content, sorted by priority.
func LoadSkills(manifest *Manifest) ([]Skill, error) {
	skills := make([]Skill, 0, len(manifest.Skills))

	for _, entry := range manifest.Skills {
		content, ok := skillFiles[entry.File]
		if !ok {
			return nil, fmt.Errorf("skill file %q not found for skill %q", entry.File, entry.Name)
		}
		skills = append(skills, Skill{
			Entry:   entry,
			Content: content,
		})
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Entry.Priority < skills[j].Entry.Priority
	})

	return skills, nil
}

// DefaultRules returns the bundled skill-rules.json content.
func DefaultRules() string {
	return embeddedRules
}
