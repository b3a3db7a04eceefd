// Package skills bundles the starter skill documents and trigger rules that
// `skillgate install` copies into a project's .claude/skills directory.
package skills

// Entry describes one bundled skill in the manifest.
type Entry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Priority    int    `yaml:"priority"`
	Description string `yaml:"description"`
}

// Manifest is the complete bundled-skills manifest.
type Manifest struct {
	Skills []Entry `yaml:"skills"`
}

// Skill pairs a manifest entry with its document content.
type Skill struct {
	Entry   Entry
	Content string
}
