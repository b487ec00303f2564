package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/promptforge/schema"
)

// NewToolsCmd creates the "tools" subcommand.
func NewToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools <file>",
		Short: "List the tools in a configuration with their parameter documentation",
		Args:  cobra.ExactArgs(1),
		RunE:  runTools,
	}
}

func runTools(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	b, err := loadBuilder(args[0])
	if err != nil {
		return err
	}

	tools := b.Tools()
	if len(tools) == 0 {
		fmt.Fprintln(out, "No tools defined.")
		return nil
	}

	for i, tool := range tools {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", tool.Name)
		if tool.Description != "" {
			fmt.Fprintf(out, "  %s\n", tool.Description)
		}
		if tool.Parameters == nil {
			continue
		}
		for _, doc := range schema.Describe(tool.Parameters) {
			requirement := "optional"
			if doc.Required {
				requirement = "required"
			}
			fmt.Fprintf(out, "  %s (%s, %s): %s\n", doc.Name, doc.Type, requirement, doc.Description)
		}
	}
	return nil
}
