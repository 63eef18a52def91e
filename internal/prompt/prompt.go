// Package prompt assembles system prompts and enhanced user content for a
// run.
package prompt

import (
	"fmt"
	"os"
	"strings"
)

// System builds the system prompt from the agent's base prompt and the
// resolved rule strings, in order. Empty parts are skipped; an entirely
// empty assembly returns "".
func System(agentPrompt string, rules []string) string {
	var sections []string
	if s := strings.TrimSpace(agentPrompt); s != "" {
		sections = append(sections, s)
	}

	var kept []string
	for _, rule := range rules {
		if r := strings.TrimSpace(rule); r != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) > 0 {
		var b strings.Builder
		b.WriteString("Follow these rules:\n")
		for _, r := range kept {
			b.WriteString("- ")
			b.WriteString(r)
			b.WriteByte('\n')
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(sections, "\n\n")
}

// EnhanceUser appends injected context items to the script text. Items
// keep their given order.
func EnhanceUser(script string, contextItems []string) string {
	script = strings.TrimRight(script, "\n")

	var kept []string
	for _, item := range contextItems {
		if c := strings.TrimSpace(item); c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return script
	}

	var b strings.Builder
	b.WriteString(script)
	b.WriteString("\n\nAdditional context:\n")
	for _, c := range kept {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// LoadRuleFiles reads each rule file and returns one rule string per
// file, preserving order.
func LoadRuleFiles(paths []string) ([]string, error) {
	var rules []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read rules file: %w", err)
		}
		rules = append(rules, strings.TrimSpace(string(data)))
	}
	return rules, nil
}
