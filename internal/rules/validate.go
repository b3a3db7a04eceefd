package rules

import (
	"fmt"
	"path"
	"regexp"
)

// Problem describes one issue found in a rule table.
type Problem struct {
	Rule    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Rule, p.Message)
}

var knownPriorities = map[string]bool{
	"high":   true,
	"medium": true,
	"low":    true,
}

// Validate checks a rule table for conditions the loader deliberately
// tolerates: rules that can never activate, intent patterns that do not
// compile, bad file-trigger globs, and unknown priority tiers.
func Validate(set *Set) []Problem {
	var problems []Problem

	for _, name := range set.Names() {
		rule := set.Get(name)

		if !hasAnyTrigger(rule) {
			problems = append(problems, Problem{
				Rule:    name,
				Message: "has no triggers and can never activate",
			})
		}

		for _, pat := range rule.PromptTriggers.IntentPatterns {
			if _, err := regexp.Compile("(?i)" + pat); err != nil {
				problems = append(problems, Problem{
					Rule:    name,
					Message: fmt.Sprintf("intent pattern %q does not compile: %v", pat, err),
				})
			}
		}

		if rule.Priority != "" && !knownPriorities[rule.Priority] {
			problems = append(problems, Problem{
				Rule:    name,
				Message: fmt.Sprintf("unknown priority %q (want high, medium, or low)", rule.Priority),
			})
		}

		if rule.FileTriggers != nil {
			for _, pat := range rule.FileTriggers.PathPatterns {
				if _, err := path.Match(pat, ""); err != nil {
					problems = append(problems, Problem{
						Rule:    name,
						Message: fmt.Sprintf("path pattern %q is not a valid glob: %v", pat, err),
					})
				}
			}
			for _, pat := range rule.FileTriggers.ContentPatterns {
				if _, err := regexp.Compile(pat); err != nil {
					problems = append(problems, Problem{
						Rule:    name,
						Message: fmt.Sprintf("content pattern %q does not compile: %v", pat, err),
					})
				}
			}
		}
	}

	return problems
}

func hasAnyTrigger(rule *Rule) bool {
	if len(rule.PromptTriggers.Keywords) > 0 || len(rule.PromptTriggers.IntentPatterns) > 0 {
		return true
	}
	if rule.FileTriggers != nil {
		return len(rule.FileTriggers.PathPatterns) > 0 || len(rule.FileTriggers.ContentPatterns) > 0
	}
	return false
}
