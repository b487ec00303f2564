package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quill-labs/promptforge"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a prompt configuration without rendering",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")
	out := cmd.OutOrStdout()

	b, err := loadBuilder(args[0])
	if err != nil {
		return err
	}

	result := promptforge.Validate(b)

	if formatFlag == "json" {
		printResultJSON(out, result)
	} else {
		fmt.Fprintln(out, result.Format())
	}

	if !result.Valid || (strict && len(result.Warnings) > 0) {
		return exitError(exitValidation, "validation failed")
	}
	return nil
}

func printResultJSON(w io.Writer, result promptforge.Result) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}
