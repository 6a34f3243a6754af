package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/jsonsettings/internal/prompt"
	"github.com/wizzomafizzo/jsonsettings/internal/settings"
)

// createEditCommand creates the interactive edit command.
func createEditCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Interactively set values, then save once",
		Long: "Interactively set values, then save once.\n\n" +
			"Enter a key and then its value. An empty key finishes and saves;\n" +
			"Ctrl+C discards all changes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			loaded, err := sess.load(args[0])
			if err != nil {
				return err
			}

			prompter := deps.prompter(loaded.Keys())
			changes, err := editLoop(prompter, loaded, cmd.OutOrStdout())
			_ = prompter.Close()
			if errors.Is(err, prompt.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, no changes saved")
				return nil
			}
			if err != nil {
				return err
			}

			if changes == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes")
				return nil
			}
			if err := sess.save(loaded); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d change(s) to %s\n", changes, loaded.Path())
			return nil
		},
	}
}

// editLoop applies key/value pairs from the prompter until an empty key
func editLoop(prompter prompt.Prompter, loaded *settings.Settings, out io.Writer) (int, error) {
	changes := 0
	for {
		key, err := prompt.TextInputWithPrompter(prompter, "key>")
		if err != nil {
			return changes, err //nolint:wrapcheck // ErrCancelled is checked by the caller
		}
		if key == "" {
			return changes, nil
		}

		if current, ok := loaded.Get(key); ok {
			if shown, err := formatValue(current, 0); err == nil {
				_, _ = fmt.Fprintf(out, "current: %s\n", shown)
			}
		}

		raw, err := prompt.TextInputWithPrompter(prompter, "value>")
		if err != nil {
			return changes, err //nolint:wrapcheck // ErrCancelled is checked by the caller
		}

		if err := loaded.Set(key, parseValue(raw)); err != nil {
			_, _ = fmt.Fprintf(out, "skipped: %v\n", err)
			continue
		}
		changes++
	}
}
