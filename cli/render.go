package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-labs/promptforge"
	"github.com/quill-labs/promptforge/loader"
	"github.com/quill-labs/promptforge/store"
)

// NewRenderCmd creates the "render" subcommand.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a prompt configuration to a system prompt document",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}

	cmd.Flags().String("format", "verbose", "Output format: verbose | compact | condensed")
	cmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().String("store", "", "SQLite database to save a snapshot to")
	cmd.Flags().String("name", "", "Snapshot name (used with --store)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	storePath, _ := cmd.Flags().GetString("store")
	name, _ := cmd.Flags().GetString("name")

	format, err := promptforge.ParseFormat(formatFlag)
	if err != nil {
		return exitError(exitRuntime, "%v", err)
	}

	b, err := loadBuilder(filePath)
	if err != nil {
		return err
	}

	doc := b.Render(format)

	if storePath != "" {
		if err := saveSnapshot(cmd, storePath, name, filePath, format, b.Snapshot(), doc); err != nil {
			return err
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(doc+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}

func saveSnapshot(cmd *cobra.Command, storePath, name, filePath string, format promptforge.Format, cfg promptforge.Config, doc string) error {
	if name == "" {
		name = filePath
	}

	s, err := store.Open(storePath)
	if err != nil {
		return exitError(exitRuntime, "opening store: %v", err)
	}
	defer s.Close()

	snap, err := s.Save(cmd.Context(), name, format, cfg, doc)
	if err != nil {
		return exitError(exitRuntime, "saving snapshot: %v", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Saved snapshot %s (%s)\n", snap.ID, snap.Name)
	return nil
}

// loadBuilder reads and parses a configuration file into a builder, mapping
// missing files to the dedicated exit code.
func loadBuilder(filePath string) (*promptforge.Builder, error) {
	b, err := loader.Load(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, exitError(exitFileNotFound, "file not found: %s", filePath)
		}
		return nil, exitError(exitRuntime, "loading %s: %v", filePath, err)
	}
	return b, nil
}
