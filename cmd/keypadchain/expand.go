package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/internal/config"
)

func newExpandCmd(a *app) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "expand <code>",
		Short: "Print one optimal human press sequence for a code",
		Long: `expand reconstructs a shortest sequence of human presses for the code.
Sequences grow roughly 2.5× per robot, so deep chains hit --max-expand.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.evaluator("expand")
			if err != nil {
				return err
			}
			seq, err := e.Expand(args[0], a.cfg.Depth)
			if err != nil {
				return err
			}
			if verify {
				typed, err := chain.Replay(seq, a.cfg.Depth)
				if err != nil {
					return err
				}
				if typed != args[0] {
					return fmt.Errorf("replay typed %q, want %q", typed, args[0])
				}
				a.log.Info().Str("code", args[0]).Int("presses", len(seq)).Msg("expansion verified")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seq)
			return err
		},
	}

	f := cmd.Flags()
	f.Uint64("max-expand", chain.DefaultMaxExpand, "refuse to build sequences longer than this")
	f.BoolVar(&verify, "verify", false, "replay the sequence through the chain before printing")
	mustBind(a.v, config.KeyMaxExpand, f, "max-expand")

	return cmd
}
