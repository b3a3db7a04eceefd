package rules

import (
	"regexp"
	"strings"
)

// Match returns the names of rules relevant to the prompt, in rule-table
// insertion order (not in the order triggers fired).
//
// A rule activates when any of its keywords occurs in the prompt as a
// case-insensitive substring, or any of its intent patterns (compiled
// case-insensitively) matches the prompt. File triggers are not evaluated
// here: the matcher only ever sees the prompt text.
func Match(prompt string, set *Set) []string {
	if set.Len() == 0 {
		return nil
	}

	lower := strings.ToLower(prompt)

	var matched []string
	for _, name := range set.names {
		if ruleMatches(set.rules[name], prompt, lower) {
			matched = append(matched, name)
		}
	}
	return matched
}

func ruleMatches(rule *Rule, prompt, lowerPrompt string) bool {
	for _, kw := range rule.PromptTriggers.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowerPrompt, strings.ToLower(kw)) {
			return true
		}
	}

	for _, pat := range rule.PromptTriggers.IntentPatterns {
		if pat == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			// One broken pattern must not abort the scan.
			continue
		}
		if re.MatchString(prompt) {
			return true
		}
	}

	return false
}
