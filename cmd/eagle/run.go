package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script.caw]",
		Short: "Run an agent script",
		Long: `Run an agent script. The script is a natural-language .caw file; its
text becomes the first user message. Pass --prompt to run inline text
instead of a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentName, _ := cmd.Flags().GetString("agent")
			inline, _ := cmd.Flags().GetString("prompt")
			contextItems, _ := cmd.Flags().GetStringArray("context")
			extraRules, _ := cmd.Flags().GetStringArray("rules")
			yes, _ := cmd.Flags().GetBool("yes")

			script, err := resolveScript(args, inline)
			if err != nil {
				return err
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, _, err := a.execute(ctx, agentName, script, contextItems, extraRules, newApprover(yes))
			if err != nil {
				return err
			}

			fmt.Println(result.FinalText)
			if result.Truncated {
				fmt.Fprintln(os.Stderr, "warning: response was truncated by the model's length limit")
			}
			return nil
		},
	}

	cmd.Flags().StringP("agent", "a", "", "Agent to run the script with")
	cmd.Flags().StringP("prompt", "p", "", "Inline script text instead of a file")
	cmd.Flags().StringArrayP("context", "c", nil, "Context items injected into the user message (repeatable)")
	cmd.Flags().StringArray("rules", nil, "Additional rule files appended to the system prompt (repeatable)")
	cmd.Flags().BoolP("yes", "y", false, "Approve all tool permission requests without asking")
	return cmd
}

// resolveScript returns the script text from the file argument or the
// inline flag; exactly one must be supplied.
func resolveScript(args []string, inline string) (string, error) {
	hasFile := len(args) == 1
	hasInline := strings.TrimSpace(inline) != ""

	switch {
	case hasFile && hasInline:
		return "", fmt.Errorf("pass either a script file or --prompt, not both")
	case hasInline:
		return inline, nil
	case hasFile:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read script: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("script %s is empty", args[0])
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("a script file or --prompt is required")
	}
}
