package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
	"github.com/wizzomafizzo/jsonsettings/internal/settings"
)

// createBackupCommand creates the backup command.
func createBackupCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Copy a settings file to <file>.bak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			backupPath, err := settings.CreateBackup(sess.fs, args[0])
			if err != nil {
				return err //nolint:wrapcheck // already wrapped
			}
			logging.Get(sess.ctx).Info().Str("backup", backupPath).Msg("created backup")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", backupPath)
			return nil
		},
	}
}

// createRestoreCommand creates the restore command.
func createRestoreCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a settings file from <file>.bak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			if !settings.HasBackup(sess.fs, args[0]) {
				return fmt.Errorf("no backup found for %s", args[0])
			}

			backupPath := settings.BackupPath(args[0])
			if err := settings.RestoreFromBackup(sess.fs, backupPath, args[0]); err != nil {
				return err //nolint:wrapcheck // already wrapped
			}
			logging.Get(sess.ctx).Info().Str("backup", backupPath).Msg("restored backup")

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", args[0], backupPath)
			return nil
		},
	}
}
