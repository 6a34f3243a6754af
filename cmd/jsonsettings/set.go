package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
)

// createSetCommand creates the set command.
func createSetCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set a value and save the file",
		Long: "Set a value and save the file.\n\n" +
			"The value is parsed as JSON when possible (10, true, null, {\"a\":1}),\n" +
			"otherwise it is stored as a string.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			loaded, err := sess.load(args[0])
			if err != nil {
				return err
			}

			value := parseValue(args[2])
			if err := loaded.Set(args[1], value); err != nil {
				return err //nolint:wrapcheck // names the key
			}
			logging.Get(sess.ctx).Debug().
				Str("key", args[1]).
				Str("type", describeType(value)).
				Msg("set value")

			return sess.save(loaded)
		},
	}
}

// createUnsetCommand creates the unset command.
func createUnsetCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <file> <key>",
		Short: "Remove a value and save the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			loaded, err := sess.load(args[0])
			if err != nil {
				return err
			}

			if !loaded.Delete(args[1]) {
				return fmt.Errorf("key %q not found in %s", args[1], args[0])
			}

			return sess.save(loaded)
		},
	}
}
