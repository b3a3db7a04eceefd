package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the rule table from the given path.
// Returns (nil, nil) when the file does not exist: a missing rule file means
// "no rules available" and is not an error. A file that exists but cannot be
// parsed is an error.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a JSON object mapping skill name to rule definition.
// The object is walked token by token instead of unmarshaled into a map so
// that key order survives; match results follow rule-table insertion order.
func Parse(data []byte) (*Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid rules document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("rules document must be a JSON object, got %v", tok)
	}

	set := &Set{rules: make(map[string]*Rule)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid rule name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("rule name must be a string, got %v", keyTok)
		}

		var rule Rule
		if err := dec.Decode(&rule); err != nil {
			return nil, fmt.Errorf("invalid rule %q: %w", name, err)
		}

		if _, exists := set.rules[name]; exists {
			return nil, fmt.Errorf("duplicate rule name %q", name)
		}

		rule.Name = name
		set.names = append(set.names, name)
		set.rules[name] = &rule
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("invalid rules document: %w", err)
	}

	return set, nil
}
