package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Dsinghbailey/eagle-lang/internal/gateway"
	"github.com/Dsinghbailey/eagle-lang/internal/schedule"
	"github.com/Dsinghbailey/eagle-lang/internal/tool"
	"github.com/Dsinghbailey/eagle-lang/internal/transcript"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the local gateway and configured schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			registry, err := a.buildRegistry()
			if err != nil {
				return err
			}

			var store *transcript.Store
			if a.cfg.History.Enabled {
				store, err = transcript.Open(a.historyPath())
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			// Headless runs cannot prompt; ask-gated tools are denied.
			approver := tool.DenyAllRequester{Reason: "gateway runs are non-interactive"}

			runFunc := func(ctx context.Context, agentName, script string) (gateway.RunSummary, error) {
				result, name, err := a.execute(ctx, agentName, script, nil, nil, approver)
				if err != nil {
					return gateway.RunSummary{}, err
				}
				summary := gateway.RunSummary{
					RunID:     result.RunID,
					Agent:     name,
					FinalText: result.FinalText,
					Truncated: result.Truncated,
					Turns:     result.Turns,
					ToolCalls: len(result.ToolCalls),
				}
				for _, tc := range result.ToolCalls {
					if tc.IsError {
						summary.ToolErrors++
					}
				}
				return summary, nil
			}

			sched := schedule.New(a.logger)
			for _, s := range a.cfg.Schedules {
				job := schedule.ScriptJob{
					JobName:    s.Name,
					Expression: s.Cron,
					ScriptPath: s.Script,
					Agent:      s.Agent,
					Execute: func(ctx context.Context, agentName, script string) error {
						_, _, err := a.execute(ctx, agentName, script, nil, nil, approver)
						return err
					},
				}
				if err := sched.Add(job); err != nil {
					return err
				}
			}
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			gw := gateway.New(gateway.Options{
				Listen:   a.cfg.Gateway.Listen,
				Registry: registry,
				Run:      runFunc,
				Store:    store,
				Logger:   a.logger,
			})
			return gw.Start(ctx)
		},
	}
}
