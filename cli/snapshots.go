package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-labs/promptforge/store"
)

// NewSnapshotsCmd creates the "snapshots" subcommand.
func NewSnapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Manage stored prompt snapshots",
	}

	cmd.PersistentFlags().String("store", "promptforge.db", "SQLite database path")

	cmd.AddCommand(newSnapshotsListCmd())
	cmd.AddCommand(newSnapshotsShowCmd())
	cmd.AddCommand(newSnapshotsDeleteCmd())

	return cmd
}

func newSnapshotsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			snapshots, err := s.List(cmd.Context())
			if err != nil {
				return exitError(exitRuntime, "listing snapshots: %v", err)
			}

			out := cmd.OutOrStdout()
			if len(snapshots) == 0 {
				fmt.Fprintln(out, "No snapshots stored.")
				return nil
			}
			for _, snap := range snapshots {
				fmt.Fprintf(out, "%s  %s  %-9s  %s\n",
					snap.ID, snap.CreatedAt.Format("2006-01-02 15:04:05"), snap.Format, snap.Name)
			}
			return nil
		},
	}
}

func newSnapshotsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a snapshot's rendered document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			snap, err := s.Get(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return exitError(exitNotFound, "snapshot not found: %s", args[0])
			}
			if err != nil {
				return exitError(exitRuntime, "loading snapshot: %v", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), snap.Prompt)
			return nil
		},
	}
}

func newSnapshotsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			err = s.Delete(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return exitError(exitNotFound, "snapshot not found: %s", args[0])
			}
			if err != nil {
				return exitError(exitRuntime, "deleting snapshot: %v", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Deleted snapshot %s\n", args[0])
			return nil
		},
	}
}

func openStore(cmd *cobra.Command) (*store.SnapshotStore, error) {
	path, _ := cmd.Flags().GetString("store")
	s, err := store.Open(path)
	if err != nil {
		return nil, exitError(exitRuntime, "opening store: %v", err)
	}
	return s, nil
}
