package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "press <code>",
		Short: "Print the minimum human presses for one code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.evaluator("press")
			if err != nil {
				return err
			}
			n, err := e.MinPresses(args[0], a.cfg.Depth)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
}
