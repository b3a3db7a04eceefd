package skills

import (
	"fmt"
	"os"
	"path/filepath"
)

// Install writes the bundled skills and the default skill-rules.json under
// <root>/.claude/skills/. Existing files are left alone unless force is set,
// so a project's curated skills survive reinstalls.
func Install(root string, force bool) error {
	manifest, err := LoadManifest()
	if err != nil {
		return err
	}
	loaded, err := LoadSkills(manifest)
	if err != nil {
		return err
	}

	skillsDir := filepath.Join(root, ".claude", "skills")
	for _, skill := range loaded {
		if err := installSkill(skillsDir, skill, force); err != nil {
			return fmt.Errorf("failed to install skill %s: %w", skill.Entry.Name, err)
		}
	}

	rulesPath := filepath.Join(skillsDir, "skill-rules.json")
	if _, err := os.Stat(rulesPath); err == nil && !force {
		return nil
	}
	if err := os.MkdirAll(skillsDir, 0755); err != nil {
		return fmt.Errorf("failed to create skills directory: %w", err)
	}
	if err := os.WriteFile(rulesPath, []byte(DefaultRules()), 0644); err != nil {
		return fmt.Errorf("failed to write skill-rules.json: %w", err)
	}
	return nil
}

func installSkill(skillsDir string, skill Skill, force bool) error {
	dir := filepath.Join(skillsDir, skill.Entry.Name)
	path := filepath.Join(dir, "SKILL.md")

	if _, err := os.Stat(path); err == nil && !force {
		return nil // already installed
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(skill.Content), 0644); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}
	return nil
}
