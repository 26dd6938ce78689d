// Package app implements the pwgen commands.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pwgen/internal/config"
	"github.com/GoPowerDNS-Admin/pwgen/internal/logger"
)

// options carries the flags and the loaded config through the commands.
type options struct {
	configPath string
	logLevel   string

	alphabet string
	charset  string
	count    int
	unique   bool
	seed     uint64
	hash     bool
	metrics  bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pwgen [length]",
		Short: "pwgen generates random strings and passwords",
		Long: `pwgen generates random strings of a given length, every character drawn
uniformly from an alphabet built from presets or custom characters.

The optional argument is the length. A missing, invalid or negative length
falls back to the configured default (12).`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: opts.load,
		RunE:              opts.generate,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath, "directory holding "+config.FileName)
	pf.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")

	f := cmd.Flags()
	f.StringVarP(&opts.alphabet, "alphabet", "a", "", "comma separated alphabet presets, see 'pwgen alphabets'")
	f.StringVarP(&opts.charset, "charset", "c", "", "custom characters, overrides --alphabet")
	f.IntVarP(&opts.count, "count", "n", 1, "number of strings to generate")
	f.BoolVar(&opts.unique, "unique", false, "drop duplicate characters of the alphabet")
	f.Uint64Var(&opts.seed, "seed", 0, "seed a reproducible source (not for secrets)")
	f.BoolVar(&opts.hash, "hash", false, "append a tab and the argon2id hash of every string")
	f.BoolVar(&opts.metrics, "metrics", false, "write generator metrics to stderr when done")

	cmd.AddCommand(newAlphabetsCmd(), newConfigCmd(opts))

	return cmd
}

// load reads the config and sets up the logger before any command runs.
func (o *options) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.ReadConfig(o.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.LogLevel = o.logLevel
	}

	if err = logger.Init(cfg.Log); err != nil {
		return err
	}

	o.cfg = cfg

	log.Debug().Str("config", o.configPath).Str("command", cmd.Name()).Msg("config loaded")

	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
