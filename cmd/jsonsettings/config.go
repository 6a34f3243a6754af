package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/jsonsettings/internal/config"
	"github.com/wizzomafizzo/jsonsettings/internal/storage"
)

// createConfigCommand creates the config command group.
func createConfigCommand(deps dependencies) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the jsonsettings configuration",
	}
	configCmd.AddCommand(createConfigInitCommand(deps))
	return configCmd
}

func createConfigInitCommand(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configInitPath(cmd, deps.fs, args)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			exists, err := afero.Exists(deps.fs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return err //nolint:wrapcheck // already wrapped
			}
			if err := deps.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := afero.WriteFile(deps.fs, path, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config file %s: %w", path, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}

// configInitPath picks the positional path, then --config, then the XDG default
func configInitPath(cmd *cobra.Command, fs afero.Fs, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if flagPath, _ := cmd.Flags().GetString("config"); flagPath != "" {
		return flagPath, nil
	}
	path, err := storage.New(fs).GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	return path, nil
}
