package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/jsonsettings/internal/config"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
	"github.com/wizzomafizzo/jsonsettings/internal/prompt"
	"github.com/wizzomafizzo/jsonsettings/internal/settings"
	"github.com/wizzomafizzo/jsonsettings/internal/storage"
)

// dependencies are the collaborators every command is built from
type dependencies struct {
	fs        afero.Fs
	logWriter io.Writer
	prompter  func(completions []string) prompt.Prompter
}

func productionDependencies() dependencies {
	return dependencies{
		fs: afero.NewOsFs(),
		prompter: func(completions []string) prompt.Prompter {
			return prompt.NewLinerPrompter(completions)
		},
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return buildRootCommand(productionDependencies())
}

func buildRootCommand(deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "jsonsettings",
		Short:         "Read and write JSON settings files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (defaults to the XDG config dir)")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level")

	rootCmd.AddCommand(
		createGetCommand(deps),
		createSetCommand(deps),
		createUnsetCommand(deps),
		createKeysCommand(deps),
		createEditCommand(deps),
		createBackupCommand(deps),
		createRestoreCommand(deps),
		createConfigCommand(deps),
	)

	return rootCmd
}

// session is the per-invocation state shared by the settings commands
type session struct {
	ctx    context.Context
	fs     afero.Fs
	config *config.Config
}

// newSession loads the app config and attaches a logger to the command context
func newSession(cmd *cobra.Command, deps dependencies) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		configPath, err = storage.New(deps.fs).GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	cfg, err := config.LoadWithFS(deps.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	levelName := cfg.Logging.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		levelName = override
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, err = logging.New(ctx, deps.fs, logging.Config{
		Writer:     deps.logWriter,
		Command:    cmd.Name(),
		Level:      level,
		MaxSizeMB:  cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return &session{ctx: ctx, fs: deps.fs, config: cfg}, nil
}

func (s *session) load(path string) (*settings.Settings, error) {
	loaded, err := settings.Load(s.ctx, s.fs, path, settings.WithIndent(s.config.Indent))
	if err != nil {
		return nil, err //nolint:wrapcheck // settings errors name the file
	}
	return loaded, nil
}

// save backs up the file when configured and waits for the write to land
func (s *session) save(loaded *settings.Settings) error {
	if s.config.Backup {
		backupPath, err := settings.CreateBackup(s.fs, loaded.Path())
		if err != nil {
			return err //nolint:wrapcheck // already wrapped
		}
		logging.Get(s.ctx).Debug().Str("backup", backupPath).Msg("created backup")
	}

	if err := <-loaded.Save(); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	logging.Get(s.ctx).Info().Str("path", loaded.Path()).Msg("saved settings")
	return nil
}
