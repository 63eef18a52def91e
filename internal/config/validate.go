package config

import (
	"errors"
	"fmt"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

// providerNames lists the accepted agent provider values.
var providerNames = map[string]bool{
	"openai":     true,
	"openrouter": true,
	"claude":     true,
	"gemini":     true,
}

// policyNames lists the accepted tools.policy values.
var policyNames = map[string]bool{
	"":              true, // defaults to ask
	"allow_all":     true,
	"deny_unlisted": true,
	"ask":           true,
}

// Validate checks the structural validity of a Config. All problems are
// reported together as one configuration error.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if len(cfg.Agents) == 0 {
		errs = append(errs, errors.New("at least one agent must be configured"))
	}
	for name, agent := range cfg.Agents {
		if agent.Provider == "" {
			errs = append(errs, fmt.Errorf("agent %q: provider is required", name))
		} else if !providerNames[agent.Provider] {
			errs = append(errs, fmt.Errorf("agent %q: unknown provider %q", name, agent.Provider))
		}
		if agent.Model == "" {
			errs = append(errs, fmt.Errorf("agent %q: model is required", name))
		}
	}

	if cfg.DefaultAgent != "" {
		if _, ok := cfg.Agents[cfg.DefaultAgent]; !ok {
			errs = append(errs, fmt.Errorf("default_agent %q is not a configured agent", cfg.DefaultAgent))
		}
	}

	if !policyNames[cfg.Tools.Policy] {
		errs = append(errs, fmt.Errorf("tools.policy %q is not one of allow_all, deny_unlisted, ask", cfg.Tools.Policy))
	}

	for i, s := range cfg.Schedules {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("schedules[%d]: name is required", i))
		}
		if s.Cron == "" {
			errs = append(errs, fmt.Errorf("schedules[%d]: cron is required", i))
		}
		if s.Script == "" {
			errs = append(errs, fmt.Errorf("schedules[%d]: script is required", i))
		}
		if s.Agent != "" {
			if _, ok := cfg.Agents[s.Agent]; !ok {
				errs = append(errs, fmt.Errorf("schedules[%d]: unknown agent %q", i, s.Agent))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", provider.ErrConfig, err)
	}
	return nil
}
