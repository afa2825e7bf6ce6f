package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/keypadchain/batch"
	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
)

// app carries settings shared by every subcommand. It is populated by the
// root PersistentPreRunE before any RunE executes.
type app struct {
	v          *viper.Viper
	cfg        config.Config
	log        zerolog.Logger
	configPath string
	verbose    int
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "keypadchain",
		Short: "Price door codes typed through a chain of keypad robots",
		Long: `keypadchain computes the fewest presses a human must make on a
directional keypad so that a chain of robots types a code on the numeric
door keypad.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./keypadchain.yaml if present)")
	pf.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	pf.Int("depth", batch.DefaultDepth, "number of robot-operated directional keypads")
	pf.String("strategy", "lshape", "candidate paths per level: lshape or exhaustive")
	mustBind(a.v, config.KeyDepth, pf, "depth")
	mustBind(a.v, config.KeyStrategy, pf, "strategy")
	mustBind(a.v, config.KeyVerbosity, pf, "verbose")

	root.AddCommand(newSolveCmd(a), newPressCmd(a), newExpandCmd(a))
	return root
}

// load reads the config file, decodes settings and sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.ReadFile(a.v, a.configPath); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Setup(cfg.Verbosity, cmd.ErrOrStderr())
	a.log.Debug().
		Str("command", cmd.Name()).
		Int("depth", cfg.Depth).
		Stringer("strategy", cfg.Strategy).
		Msg("configuration loaded")
	return nil
}

// evaluator builds a chain.Evaluator from the loaded settings.
func (a *app) evaluator(component string) (*chain.Evaluator, error) {
	return chain.New(
		chain.WithStrategy(a.cfg.Strategy),
		chain.WithMaxExpand(a.cfg.MaxExpand),
		chain.WithLogger(logging.For(component)),
	)
}

func mustBind(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}
