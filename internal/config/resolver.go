package config

import (
	"fmt"
	"sort"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
	"github.com/Dsinghbailey/eagle-lang/internal/tool"
)

// openRouterBaseURL is used when an openrouter agent does not override
// the endpoint. OpenRouter speaks the OpenAI wire format.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// SelectAgent resolves which agent a run uses: the explicit name, else
// default_agent, else the sole configured agent.
func (c *Config) SelectAgent(name string) (string, Agent, error) {
	if name != "" {
		agent, ok := c.Agents[name]
		if !ok {
			return "", Agent{}, fmt.Errorf("%w: unknown agent %q", provider.ErrConfig, name)
		}
		return name, agent, nil
	}

	if c.DefaultAgent != "" {
		return c.DefaultAgent, c.Agents[c.DefaultAgent], nil
	}

	if len(c.Agents) == 1 {
		for n, agent := range c.Agents {
			return n, agent, nil
		}
	}
	return "", Agent{}, fmt.Errorf("%w: multiple agents configured and none selected; set default_agent or pass --agent", provider.ErrConfig)
}

// AgentNames returns the configured agent names in sorted order.
func (c *Config) AgentNames() []string {
	names := make([]string, 0, len(c.Agents))
	for name := range c.Agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProviderConfig maps an agent definition to a provider configuration.
func (a Agent) ProviderConfig() (provider.Config, error) {
	cfg := provider.Config{
		Model:       a.Model,
		APIKey:      a.APIKey,
		BaseURL:     a.BaseURL,
		MaxTokens:   a.MaxTokens,
		Temperature: a.Temperature,
	}

	switch a.Provider {
	case "openai":
		cfg.Kind = provider.KindOpenAI
	case "openrouter":
		cfg.Kind = provider.KindOpenAI
		if cfg.BaseURL == "" {
			cfg.BaseURL = openRouterBaseURL
		}
	case "claude":
		cfg.Kind = provider.KindAnthropic
	case "gemini":
		cfg.Kind = provider.KindGemini
	default:
		return provider.Config{}, fmt.Errorf("%w: unknown provider %q", provider.ErrConfig, a.Provider)
	}
	return cfg, nil
}

// ToolPolicy maps the tools section to a permission policy. The default
// is the ask policy.
func (t ToolsConfig) ToolPolicy() tool.Policy {
	switch t.Policy {
	case "allow_all":
		return tool.AllowAll()
	case "deny_unlisted":
		return tool.DenyUnlisted(t.Allowed...)
	default:
		return tool.Ask()
	}
}

// RequiresPermission reports whether the config forces confirmation for
// the named tool under the ask policy.
func (t ToolsConfig) RequiresPermission(name string) bool {
	for _, n := range t.RequirePermission {
		if n == name {
			return true
		}
	}
	return false
}
