package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keypadchain/batch"
	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Price every code in a file (or stdin) and print the report",
		Long: `solve reads one door code per line, prices each through the configured
number of robots and prints value × presses per code with the total.
Blank lines and lines starting with # are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open codes: %w", err)
				}
				defer f.Close()
				in = f
			}
			return a.solve(cmd, in)
		},
	}

	f := cmd.Flags()
	f.Int("workers", batch.DefaultWorkers, "concurrent evaluations (0 = unbounded)")
	f.Bool("shared-cache", false, "share one transition cache across all codes")
	f.String("format", "text", "report format: text, json or yaml")
	mustBind(a.v, config.KeyWorkers, f, "workers")
	mustBind(a.v, config.KeySharedCache, f, "shared-cache")
	mustBind(a.v, config.KeyFormat, f, "format")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, in io.Reader) error {
	codes, err := batch.ParseCodes(in)
	if err != nil {
		return err
	}

	opts := []batch.Option{
		batch.WithDepth(a.cfg.Depth),
		batch.WithWorkers(a.cfg.Workers),
		batch.WithStrategy(a.cfg.Strategy),
		batch.WithLogger(logging.For("solve")),
	}
	if a.cfg.SharedCache {
		opts = append(opts, batch.WithSharedCache())
	}
	rep, err := batch.Run(cmd.Context(), codes, opts...)
	if err != nil {
		return err
	}

	return rep.Encode(cmd.OutOrStdout(), a.cfg.Format)
}
