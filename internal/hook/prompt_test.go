package hook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const promptTestRules = `{
  "convex-backend": {
    "priority": "high",
    "description": "Backend query patterns",
    "promptTriggers": {
      "keywords": ["query"],
      "intentPatterns": []
    }
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func promptStdin(t *testing.T, prompt string) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]string{"prompt": prompt, "session_id": "s-1"})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRunPrompt_MissingRulesFilePassesThrough(t *testing.T) {
	res := RunPrompt(promptStdin(t, "fix typo"), filepath.Join(t.TempDir(), "absent.json"))
	if res.Status != StatusOutput {
		t.Fatalf("Status = %v, want StatusOutput", res.Status)
	}
	if res.Text != "fix typo" {
		t.Fatalf("Text = %q, want unchanged prompt", res.Text)
	}
}

func TestRunPrompt_NoMatchPassesThrough(t *testing.T) {
	rulesPath := writeFile(t, t.TempDir(), "skill-rules.json", promptTestRules)

	res := RunPrompt(promptStdin(t, "fix typo"), rulesPath)
	if res.Status != StatusOutput {
		t.Fatalf("Status = %v, want StatusOutput", res.Status)
	}
	if res.Text != "fix typo" {
		t.Fatalf("Text = %q, want byte-identical prompt", res.Text)
	}
}

func TestRunPrompt_MatchPrependsBanner(t *testing.T) {
	rulesPath := writeFile(t, t.TempDir(), "skill-rules.json", promptTestRules)

	prompt := "How do I write a backend query?"
	res := RunPrompt(promptStdin(t, prompt), rulesPath)
	if res.Status != StatusOutput {
		t.Fatalf("Status = %v, want StatusOutput", res.Status)
	}
	if !strings.Contains(res.Text, "convex-backend") {
		t.Errorf("output should name the matched skill, got:\n%s", res.Text)
	}
	if !strings.HasSuffix(res.Text, prompt) {
		t.Errorf("output should end with the original prompt, got:\n%s", res.Text)
	}
}

func TestRunPrompt_MalformedRulesFileFails(t *testing.T) {
	rulesPath := writeFile(t, t.TempDir(), "skill-rules.json", `{"bad json"`)

	res := RunPrompt(promptStdin(t, "anything"), rulesPath)
	if res.Status != StatusFail {
		t.Fatalf("Status = %v, want StatusFail", res.Status)
	}
	if res.Err == nil {
		t.Fatal("Err should describe the parse failure")
	}
	if res.Text != "" {
		t.Errorf("failed run must not carry output text, got %q", res.Text)
	}
}

func TestRunPrompt_MalformedEnvelopeFails(t *testing.T) {
	res := RunPrompt([]byte(`not json`), filepath.Join(t.TempDir(), "absent.json"))
	if res.Status != StatusFail {
		t.Fatalf("Status = %v, want StatusFail", res.Status)
	}
}

func TestRunPrompt_IgnoresExtraEnvelopeFields(t *testing.T) {
	stdin := []byte(`{"prompt":"fix typo","transcript_path":"/tmp/t.jsonl","hook_event_name":"UserPromptSubmit"}`)
	res := RunPrompt(stdin, filepath.Join(t.TempDir(), "absent.json"))
	if res.Status != StatusOutput || res.Text != "fix typo" {
		t.Fatalf("RunPrompt() = %+v, want passthrough of 'fix typo'", res)
	}
}
