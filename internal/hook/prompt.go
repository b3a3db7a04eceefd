package hook

import (
	"encoding/json"
	"fmt"

	"github.com/andywolf/skillgate/internal/advice"
	"github.com/andywolf/skillgate/internal/rules"
)

// RunPrompt evaluates one UserPromptSubmit envelope against the rule file at
// rulesPath and returns the advisory-augmented prompt.
//
// A missing rule file passes the prompt through unchanged. A malformed rule
// file or a malformed envelope fails the hook: no fallback text is produced,
// so the host must treat a non-zero exit as "no transformation occurred".
func RunPrompt(stdin []byte, rulesPath string) Result {
	var env PromptEnvelope
	if err := json.Unmarshal(stdin, &env); err != nil {
		return Fail(fmt.Errorf("failed to decode prompt envelope: %w", err))
	}

	set, err := rules.Load(rulesPath)
	if err != nil {
		return Fail(err)
	}
	if set == nil {
		return Output(env.Prompt)
	}

	matched := rules.Match(env.Prompt, set)
	return Output(advice.Compose(env.Prompt, matched, set))
}
