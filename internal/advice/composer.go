// Package advice renders matched skill rules into the advisory block
// prepended to the user's prompt by the prompt-time hook.
package advice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andywolf/skillgate/internal/banner"
	"github.com/andywolf/skillgate/internal/rules"
)

const multiSkillReminder = "Review each skill above before responding."

// priorityRank orders tiers for the multi-skill banner. Unknown tiers sort
// after low so a typo in the rule file cannot jump the queue.
var priorityRank = map[string]int{
	"high":   0,
	"medium": 1,
	"low":    2,
}

// Compose prepends an advisory banner for the matched rules to the original
// prompt. With no matches the prompt is returned byte-identical. Compose is
// a pure string function: it performs no file or network access.
func Compose(prompt string, matched []string, set *rules.Set) string {
	if len(matched) == 0 {
		return prompt
	}

	var body string
	if len(matched) == 1 {
		body = singleSkillBody(set.Get(matched[0]))
	} else {
		body = multiSkillBody(matched, set)
	}

	return banner.Render(body) + "\n" + banner.Separator() + "\n\n" + prompt
}

func singleSkillBody(rule *rules.Rule) string {
	var b strings.Builder
	b.WriteString("📚 SKILL ACTIVATION\n\n")
	b.WriteString(rule.Description)
	b.WriteString("\n\nSkill: ")
	b.WriteString(rule.Name)
	return b.String()
}

func multiSkillBody(matched []string, set *rules.Set) string {
	names := make([]string, len(matched))
	copy(names, matched)

	// Stable: equal-priority rules keep their rule-table order.
	sort.SliceStable(names, func(i, j int) bool {
		return rankOf(set.Get(names[i])) < rankOf(set.Get(names[j]))
	})

	var b strings.Builder
	fmt.Fprintf(&b, "📚 SKILL ACTIVATION: %d skills matched\n\n", len(names))
	for _, name := range names {
		rule := set.Get(name)
		fmt.Fprintf(&b, "%s %s: %s\n", tierMarker(rule.Priority), name, rule.Description)
	}
	b.WriteString("\n")
	b.WriteString(multiSkillReminder)
	return b.String()
}

func rankOf(rule *rules.Rule) int {
	if rank, ok := priorityRank[rule.Priority]; ok {
		return rank
	}
	return len(priorityRank)
}

func tierMarker(priority string) string {
	switch priority {
	case "high":
		return "🔴"
	case "medium":
		return "🟡"
	default:
		return "🟢"
	}
}
