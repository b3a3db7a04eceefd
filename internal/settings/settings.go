// Package settings installs and removes skillgate's hook entries in a
// project's .claude/settings.json. Entries belonging to other tools are
// left untouched.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	promptHookCommand   = "skillgate hook prompt"
	postToolHookCommand = "skillgate hook posttool"

	// editToolMatcher limits the gate to the two edit-producing tools.
	editToolMatcher = "Edit|Write"
)

// Path returns the settings file location for a project root.
func Path(root string) string {
	return filepath.Join(root, ".claude", "settings.json")
}

// Install adds skillgate's UserPromptSubmit and PostToolUse hook entries,
// replacing any stale skillgate entries first. Creates the settings file if
// the project has none. Idempotent.
func Install(root string) error {
	doc, err := read(root)
	if err != nil {
		return err
	}

	hooks := hooksSection(doc)
	installed := map[string][]interface{}{
		"UserPromptSubmit": {hookEntry("", promptHookCommand)},
		"PostToolUse":      {hookEntry(editToolMatcher, postToolHookCommand)},
	}
	for event, entries := range installed {
		existing, _ := hooks[event].([]interface{})
		hooks[event] = append(entries, removeOwnEntries(existing)...)
	}
	doc["hooks"] = hooks

	return write(root, doc)
}

// Uninstall removes every skillgate-owned hook entry. Idempotent; a missing
// settings file is not an error.
func Uninstall(root string) error {
	if _, err := os.Stat(Path(root)); os.IsNotExist(err) {
		return nil
	}

	doc, err := read(root)
	if err != nil {
		return err
	}

	hooks, ok := doc["hooks"].(map[string]interface{})
	if !ok {
		return nil
	}
	for event, raw := range hooks {
		entries, ok := raw.([]interface{})
		if !ok {
			continue
		}
		filtered := removeOwnEntries(entries)
		if len(filtered) == 0 {
			delete(hooks, event)
		} else {
			hooks[event] = filtered
		}
	}
	doc["hooks"] = hooks

	return write(root, doc)
}

func read(root string) (map[string]interface{}, error) {
	doc := make(map[string]interface{})
	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}
	return doc, nil
}

func write(root string, doc map[string]interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, ".claude"), 0755); err != nil {
		return fmt.Errorf("failed to create .claude directory: %w", err)
	}
	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings.json: %w", err)
	}
	return nil
}

func hooksSection(doc map[string]interface{}) map[string]interface{} {
	if hooks, ok := doc["hooks"].(map[string]interface{}); ok {
		return hooks
	}
	return make(map[string]interface{})
}

func hookEntry(matcher, command string) map[string]interface{} {
	entry := map[string]interface{}{
		"hooks": []interface{}{
			map[string]interface{}{
				"type":    "command",
				"command": command,
			},
		},
	}
	if matcher != "" {
		entry["matcher"] = matcher
	}
	return entry
}

// removeOwnEntries filters out entries whose command invokes skillgate.
func removeOwnEntries(entries []interface{}) []interface{} {
	var kept []interface{}
	for _, entry := range entries {
		if !isOwnEntry(entry) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func isOwnEntry(entry interface{}) bool {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return false
	}
	if cmd, ok := m["command"].(string); ok && strings.Contains(cmd, "skillgate hook") {
		return true
	}
	inner, ok := m["hooks"].([]interface{})
	if !ok {
		return false
	}
	for _, h := range inner {
		hm, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		if cmd, ok := hm["command"].(string); ok && strings.Contains(cmd, "skillgate hook") {
			return true
		}
	}
	return false
}
