package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andywolf/skillgate/internal/rules"
)

func TestLoadManifest(t *testing.T) {
	manifest, err := LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest() returned error: %v", err)
	}
	if len(manifest.Skills) == 0 {
		t.Fatal("manifest has no skills")
	}
	for _, entry := range manifest.Skills {
		if entry.Name == "" || entry.File == "" || entry.Description == "" {
			t.Errorf("incomplete manifest entry: %+v", entry)
		}
	}
}

func TestLoadSkills_EveryEntryHasContent(t *testing.T) {
	manifest, err := LoadManifest()
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSkills(manifest)
	if err != nil {
		t.Fatalf("LoadSkills() returned error: %v", err)
	}
	if len(loaded) != len(manifest.Skills) {
		t.Fatalf("LoadSkills() = %d skills, want %d", len(loaded), len(manifest.Skills))
	}
	for i, skill := range loaded {
		if skill.Content == "" {
			t.Errorf("skill %s has empty content", skill.Entry.Name)
		}
		if i > 0 && loaded[i-1].Entry.Priority > skill.Entry.Priority {
			t.Errorf("skills not sorted by priority: %s before %s",
				loaded[i-1].Entry.Name, skill.Entry.Name)
		}
	}
}

func TestLoadSkills_UnknownFileIsAnError(t *testing.T) {
	manifest := &Manifest{Skills: []Entry{{Name: "ghost", File: "ghost.md"}}}
	if _, err := LoadSkills(manifest); err == nil {
		t.Fatal("LoadSkills() should fail for a file missing from the bundle")
	}
}

func TestDefaultRules_ParsesAndNamesEveryBundledSkill(t *testing.T) {
	set, err := rules.Parse([]byte(DefaultRules()))
	if err != nil {
		t.Fatalf("bundled skill-rules.json does not parse: %v", err)
	}
	if problems := rules.Validate(set); len(problems) != 0 {
		t.Fatalf("bundled skill-rules.json has problems: %v", problems)
	}

	manifest, err := LoadManifest()
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range manifest.Skills {
		if set.Get(entry.Name) == nil {
			t.Errorf("bundled rules missing an entry for skill %s", entry.Name)
		}
	}
}

func TestInstall_WritesSkillsAndRules(t *testing.T) {
	root := t.TempDir()
	if err := Install(root, false); err != nil {
		t.Fatalf("Install() returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, ".claude", "skills", "skill-rules.json")); err != nil {
		t.Error("skill-rules.json not installed")
	}
	manifest, _ := LoadManifest()
	for _, entry := range manifest.Skills {
		path := filepath.Join(root, ".claude", "skills", entry.Name, "SKILL.md")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("skill %s not installed at %s", entry.Name, path)
		}
	}
}

func TestInstall_DoesNotClobberWithoutForce(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".claude", "skills", "typescript-strict")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := []byte("# My customized skill\n")
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), custom, 0644); err != nil {
		t.Fatal(err)
	}

	if err := Install(root, false); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(custom) {
		t.Error("Install() overwrote an existing skill without force")
	}

	if err := Install(root, true); err != nil {
		t.Fatal(err)
	}
	got, err = os.ReadFile(filepath.Join(dir, "SKILL.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) == string(custom) {
		t.Error("Install(force) should overwrite the existing skill")
	}
}
