package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createGetCommand creates the get command.
func createGetCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> [key]",
		Short: "Print a settings file or one of its values",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			loaded, err := sess.load(args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				data, err := loaded.Bytes()
				if err != nil {
					return fmt.Errorf("failed to format settings: %w", err)
				}
				_, _ = cmd.OutOrStdout().Write(data)
				return nil
			}

			value, ok := loaded.Get(args[1])
			if !ok {
				return fmt.Errorf("key %q not found in %s", args[1], args[0])
			}
			out, err := formatValue(value, sess.config.Indent)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
