package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createKeysCommand creates the keys command.
func createKeysCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "List the top-level keys of a settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, deps)
			if err != nil {
				return err
			}

			loaded, err := sess.load(args[0])
			if err != nil {
				return err
			}

			keyColor := color.New(color.FgCyan, color.Bold)
			typeColor := color.New(color.FgHiBlack)
			for _, key := range loaded.Keys() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					keyColor.Sprint(key),
					typeColor.Sprint(describeType(loaded.Data[key])))
			}
			return nil
		},
	}
}
