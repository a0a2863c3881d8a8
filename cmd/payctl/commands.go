package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pay-assist/internal/app"
	"pay-assist/internal/assist"
	"pay-assist/internal/tools"

	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "Extract an action and its fields, using the LLM when needed",
		Example: `  payctl extract "Invoice bob@example.com for two hundred fifty euros due next friday"
  payctl extract --action list_invoices "show unpaid invoices over 100 dollars"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if err := assist.ValidateInputLength(input, appCfg.Assist.MinInputLength); err != nil {
				return err
			}

			engine, err := app.NewEngine(appCfg, appLogger)
			if err != nil {
				return err
			}
			defer engine.Close()

			result, err := engine.Router.Route(cmd.Context(), input, assist.ParseActionKind(action))
			if err != nil {
				return printError(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&action, "action", "a", "", "action hint (defaults to auto)")
	return cmd
}

func inferCmd() *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "infer <text>",
		Short: "Extract fields with rules only, never calling the LLM",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if err := assist.ValidateInputLength(input, appCfg.Assist.MinInputLength); err != nil {
				return err
			}

			router := assist.NewRouter(nil, assist.WithLogger(appLogger.Named("assist")))
			result, err := router.Infer(input, assist.ParseActionKind(action))
			if err != nil {
				return printError(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&action, "action", "a", "", "action hint (defaults to auto)")
	return cmd
}

func toolsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to MCP clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// listing only needs the compiled schemas
			kit, err := tools.New(nil, nil, assist.NewRouter(nil), appCfg.Assist.MinInputLength, appLogger)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), kit.Tools())
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, t := range kit.Tools() {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print full definitions with input schemas")
	return cmd
}

func callCmd() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:     "call <tool>",
		Short:   "Run a tool against the database",
		Example: `  payctl call create_payment_link --args '{"amount":"20","currency":"USD","memo":"Workshop"}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &toolArgs); err != nil {
					return fmt.Errorf("--args must be a JSON object: %w", err)
				}
			}

			a, err := app.New(cmd.Context(), appCfg, appLogger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Toolkit.Run(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return printError(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "tool arguments as a JSON object")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "payctl", version)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printError writes assist failures in their wire form and still returns
// the error so the exit code is non-zero.
func printError(w io.Writer, err error) error {
	if ae, ok := assist.AsError(err); ok {
		_ = printJSON(w, ae.Payload())
	}
	return err
}
