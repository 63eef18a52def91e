package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dsinghbailey/eagle-lang/internal/provider"
)

func capabilitiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capabilities",
		Short: "Print the tool schemas sent to providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, _ := cmd.Flags().GetString("kind")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			registry, err := a.buildRegistry()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if kind == "" {
				return enc.Encode(registry.Definitions())
			}
			shaped, err := registry.ProviderSchemas(provider.Kind(kind))
			if err != nil {
				return err
			}
			return enc.Encode(shaped)
		},
	}
	cmd.Flags().StringP("kind", "k", "", "Vendor shape: openai, anthropic, or gemini")
	return cmd
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List available tools and their permission requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			registry, err := a.buildRegistry()
			if err != nil {
				return err
			}

			for _, name := range registry.Names() {
				t, err := registry.Get(name)
				if err != nil {
					return err
				}
				marker := " "
				if t.RequiresPermission() {
					marker = "!"
				}
				fmt.Printf("%s %-14s %s\n", marker, t.Name(), t.Description())
			}
			fmt.Println("\n! requires confirmation under the ask policy")
			return nil
		},
	}
}
