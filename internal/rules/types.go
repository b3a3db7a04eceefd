// Package rules loads and evaluates the skill trigger rules consumed by the
// prompt-time hook.
package rules

// PromptTriggers describe when a skill is relevant to a submitted prompt.
type PromptTriggers struct {
	Keywords       []string `json:"keywords"`
	IntentPatterns []string `json:"intentPatterns"`
}

// FileTriggers are part of the rule schema but are never consulted by the
// prompt matcher. They are surfaced by `skillgate validate` so dormant rules
// are at least visible.
type FileTriggers struct {
	PathPatterns    []string `json:"pathPatterns"`
	ContentPatterns []string `json:"contentPatterns"`
}

// Rule binds one skill to the conditions that make it worth recommending.
type Rule struct {
	Name           string         `json:"-"`
	Activation     string         `json:"activation"`
	Enforcement    string         `json:"enforcement"`
	Priority       string         `json:"priority"`
	Description    string         `json:"description"`
	PromptTriggers PromptTriggers `json:"promptTriggers"`
	FileTriggers   *FileTriggers  `json:"fileTriggers,omitempty"`
}

// Set is the name-keyed rule table. The insertion order of the underlying
// JSON object is preserved so that match results are deterministic across
// invocations.
type Set struct {
	names []string
	rules map[string]*Rule
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns rule names in insertion order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

// Get returns the rule with the given name, or nil.
func (s *Set) Get(name string) *Rule {
	if s == nil {
		return nil
	}
	return s.rules[name]
}
