// Package config handles YAML configuration loading, environment variable
// expansion, discovery of .eagle directories, and structural validation.
package config

// Config is the top-level configuration structure, loaded from
// .eagle/config.yaml.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// DefaultAgent names the agent used when a run does not select one.
	DefaultAgent string `yaml:"default_agent,omitempty"`

	// Agents maps agent names to their definitions. At least one agent
	// is required.
	Agents map[string]Agent `yaml:"agents"`

	// Tools configures the permission policy and tool discovery.
	Tools ToolsConfig `yaml:"tools,omitempty"`

	// Run holds per-run limits.
	Run RunConfig `yaml:"run,omitempty"`

	// History configures transcript persistence.
	History HistoryConfig `yaml:"history,omitempty"`

	// Gateway configures the local HTTP gateway.
	Gateway GatewayConfig `yaml:"gateway,omitempty"`

	// Schedules lists scripts to run on cron expressions.
	Schedules []Schedule `yaml:"schedules,omitempty"`
}

// Agent defines one named model configuration.
type Agent struct {
	// Provider selects the backend family: openai, openrouter, claude,
	// or gemini.
	Provider string `yaml:"provider"`

	// Model is the provider-specific model identifier.
	Model string `yaml:"model"`

	// APIKey authenticates against the provider. Usually written as
	// ${SOME_VAR} in the YAML.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// MaxTokens caps the completion length per turn.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Temperature overrides the sampling temperature.
	Temperature *float64 `yaml:"temperature,omitempty"`

	// Prompt is the agent's base system prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// Rules lists rule files appended to the system prompt, in order.
	Rules []string `yaml:"rules,omitempty"`
}

// ToolsConfig controls which tools a run may use.
type ToolsConfig struct {
	// Policy is one of allow_all, deny_unlisted, or ask. Empty means ask.
	Policy string `yaml:"policy,omitempty"`

	// Allowed lists tool names permitted under deny_unlisted.
	Allowed []string `yaml:"allowed,omitempty"`

	// RequirePermission forces confirmation for the named tools under
	// the ask policy, in addition to tools that declare it themselves.
	RequirePermission []string `yaml:"require_permission,omitempty"`

	// Paths lists directories scanned for tool manifests.
	Paths []string `yaml:"paths,omitempty"`
}

// RunConfig holds per-run limits.
type RunConfig struct {
	// MaxTurns caps assistant turns per run. Zero uses the built-in
	// default.
	MaxTurns int `yaml:"max_turns,omitempty"`
}

// HistoryConfig configures transcript persistence.
type HistoryConfig struct {
	// Enabled turns on run recording.
	Enabled bool `yaml:"enabled,omitempty"`

	// Path is the SQLite database file. Empty uses
	// .eagle/history.db under the config directory.
	Path string `yaml:"path,omitempty"`
}

// GatewayConfig configures the local HTTP gateway.
type GatewayConfig struct {
	// Enabled turns the gateway on for the serve command.
	Enabled bool `yaml:"enabled,omitempty"`

	// Listen is the bind address, defaulting to 127.0.0.1:7410.
	Listen string `yaml:"listen,omitempty"`
}

// Schedule runs a script on a cron expression.
type Schedule struct {
	// Name identifies the schedule in logs.
	Name string `yaml:"name"`

	// Cron is a standard five-field cron expression.
	Cron string `yaml:"cron"`

	// Script is the path of the script to run.
	Script string `yaml:"script"`

	// Agent overrides the default agent for this schedule.
	Agent string `yaml:"agent,omitempty"`
}
