package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quill-labs/promptforge"
	"github.com/quill-labs/promptforge/templates"
)

// NewTemplatesCmd creates the "templates" subcommand.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Work with built-in prompt templates",
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(templates.Names(), "\n"))
			return nil
		},
	}
}

func newTemplatesShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Render a template to a system prompt document",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplatesShow,
	}

	cmd.Flags().String("format", "verbose", "Output format: verbose | compact | condensed")

	return cmd
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := promptforge.ParseFormat(formatFlag)
	if err != nil {
		return exitError(exitRuntime, "%v", err)
	}

	tmpl, ok := templates.Get(name)
	if !ok {
		return exitError(exitNotFound, "unknown template %q (available: %s)",
			name, strings.Join(templates.Names(), ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), tmpl().Render(format))
	return nil
}
