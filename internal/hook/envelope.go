// Package hook implements the two lifecycle hooks consumed by the host CLI:
// the prompt-time skill advisor (UserPromptSubmit) and the post-edit type
// check gate (PostToolUse). Each hook is a pure core function returning a
// tagged Result; the cobra layer translates Results into exit codes and
// stdout.
package hook

import "encoding/json"

// PromptEnvelope is the UserPromptSubmit payload delivered on stdin.
// Fields other than the prompt are ignored.
type PromptEnvelope struct {
	Prompt string `json:"prompt"`
}

// ToolUseEnvelope is the PostToolUse payload delivered on stdin. The tool
// input is kept opaque: the gate only cares about which tool ran and where.
type ToolUseEnvelope struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
	Cwd       string          `json:"cwd"`
}
