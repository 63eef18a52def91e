package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dsinghbailey/eagle-lang/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Validate configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg, err := config.Load(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Configuration OK (%d agents)\n", len(cfg.Agents))
				return nil
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("Configuration OK: %s (%d agents)\n", a.cfgPath, len(a.cfg.Agents))
			for _, name := range a.cfg.AgentNames() {
				agent := a.cfg.Agents[name]
				marker := " "
				if name == a.cfg.DefaultAgent {
					marker = "*"
				}
				fmt.Printf("%s %s (%s, %s)\n", marker, name, agent.Provider, agent.Model)
			}
			return nil
		},
	})
	return cmd
}
