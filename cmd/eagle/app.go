package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dsinghbailey/eagle-lang/internal/config"
	"github.com/Dsinghbailey/eagle-lang/internal/interpreter"
	"github.com/Dsinghbailey/eagle-lang/internal/prompt"
	"github.com/Dsinghbailey/eagle-lang/internal/tool"
	"github.com/Dsinghbailey/eagle-lang/internal/tool/builtin"
	"github.com/Dsinghbailey/eagle-lang/internal/transcript"
)

// app bundles the loaded configuration and shared dependencies of one
// CLI invocation.
type app struct {
	cfg       *config.Config
	cfgPath   string
	workspace string
	logger    *slog.Logger
}

// loadApp discovers and loads the configuration for the current working
// directory.
func loadApp(cmd *cobra.Command) (*app, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	workspace, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}

	cfg, cfgPath, err := config.LoadForWorkspace(workspace)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		cfgPath:   cfgPath,
		workspace: workspace,
		logger:    logger,
	}, nil
}

// buildRegistry assembles the run's tool registry: built-ins (with
// config-forced permission flags applied) plus directory tools from the
// configured paths. Invalid manifests are logged and skipped.
func (a *app) buildRegistry() (*tool.Registry, error) {
	registry := tool.NewRegistry()

	for _, t := range builtin.All() {
		if a.cfg.Tools.RequiresPermission(t.Name()) {
			t = tool.ForcePermission(t)
		}
		if err := registry.Register(t); err != nil {
			return nil, err
		}
	}

	for _, dir := range a.toolPaths() {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(a.workspace, dir)
		}
		issues, err := registry.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, issue := range issues {
			a.logger.Warn("skipping invalid tool manifest", "path", issue.Path, "error", issue.Err)
		}
	}
	return registry, nil
}

// toolPaths returns the configured tool directories, defaulting to the
// workspace and home .eagle/tools directories. Missing directories are
// skipped by the loader.
func (a *app) toolPaths() []string {
	if len(a.cfg.Tools.Paths) > 0 {
		return a.cfg.Tools.Paths
	}
	paths := []string{filepath.Join(a.workspace, config.ConfigDirName, "tools")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, config.ConfigDirName, "tools"))
	}
	return paths
}

// historyPath resolves the transcript database location.
func (a *app) historyPath() string {
	if a.cfg.History.Path != "" {
		return a.cfg.History.Path
	}
	return filepath.Join(filepath.Dir(a.cfgPath), "history.db")
}

// execute runs one script through the selected agent and optionally
// persists the transcript.
func (a *app) execute(ctx context.Context, agentName, script string, contextItems []string,
	extraRules []string, approver tool.ApprovalRequester) (interpreter.Result, string, error) {

	name, agent, err := a.cfg.SelectAgent(agentName)
	if err != nil {
		return interpreter.Result{}, "", err
	}

	providerCfg, err := agent.ProviderConfig()
	if err != nil {
		return interpreter.Result{}, name, err
	}

	registry, err := a.buildRegistry()
	if err != nil {
		return interpreter.Result{}, name, err
	}

	rulePaths := append(append([]string{}, agent.Rules...), extraRules...)
	for i, p := range rulePaths {
		if !filepath.IsAbs(p) {
			rulePaths[i] = filepath.Join(filepath.Dir(a.cfgPath), p)
		}
	}
	rules, err := prompt.LoadRuleFiles(rulePaths)
	if err != nil {
		return interpreter.Result{}, name, err
	}

	interp, err := interpreter.New(interpreter.Options{
		Provider: providerCfg,
		Registry: registry,
		Policy:   a.cfg.Tools.ToolPolicy(),
		Approver: approver,
		Env: tool.ExecutionEnv{
			Workspace: a.workspace,
			DataDir:   filepath.Dir(a.cfgPath),
			Output:    os.Stdout,
		},
		MaxTurns: a.cfg.Run.MaxTurns,
		Logger:   a.logger,
	})
	if err != nil {
		return interpreter.Result{}, name, err
	}

	result, runErr := interp.Run(ctx, interpreter.Request{
		SystemPrompt: prompt.System(agent.Prompt, rules),
		UserContent:  prompt.EnhanceUser(script, contextItems),
	})

	if a.cfg.History.Enabled {
		a.saveHistory(ctx, name, agent.Model, script, result, runErr)
	}
	return result, name, runErr
}

// saveHistory persists the run. Persistence failures are logged, never
// surfaced: history is an observer of the run.
func (a *app) saveHistory(ctx context.Context, agent, model, script string,
	result interpreter.Result, runErr error) {

	store, err := transcript.Open(a.historyPath())
	if err != nil {
		a.logger.Warn("history disabled for this run", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	status := "done"
	if runErr != nil {
		status = "failed"
	}
	rec := transcript.Record{
		RunID:       result.RunID,
		Agent:       agent,
		Model:       model,
		Script:      script,
		FinalText:   result.FinalText,
		Truncated:   result.Truncated,
		Turns:       result.Turns,
		TotalTokens: result.Usage.TotalTokens,
		Status:      status,
	}
	if err := store.SaveRun(ctx, rec, result.Transcript); err != nil {
		a.logger.Warn("failed to persist run", "run_id", result.RunID, "error", err)
	}
}
