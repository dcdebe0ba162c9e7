package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coinbase/cb-rsa-go/internal/clicfg"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/logging"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modexp"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	out     io.Writer
	v       *viper.Viper
	cfgFile string
	cfg     *clicfg.Config
	log     logging.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, v: clicfg.New()}

	root := &cobra.Command{
		Use:          "cbrsa",
		Short:        "RSA key generation and modular exponentiation tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("seed", clicfg.DefaultSeed, "seed of the deterministic random source")
	flags.Int("base", 16, "output base, 10 or 16")
	flags.String("backend", modexp.Default().Name(), "exponentiation backend")
	a.bind(flags, "log-level", clicfg.KeyLogLevel)
	a.bind(flags, "seed", clicfg.KeySeed)
	a.bind(flags, "base", clicfg.KeyBase)
	a.bind(flags, "backend", clicfg.KeyBackend)

	root.AddCommand(
		a.keygenCmd(),
		a.roundtripCmd(),
		a.powmodCmd(),
		a.benchCmd(),
		a.versionCmd(),
	)
	return root
}

// bind ties a flag to a configuration key. Binding only fails for a nil
// flag, which is a programming error.
func (a *app) bind(flags *pflag.FlagSet, name, key string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

func (a *app) load() error {
	cfg, err := clicfg.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.NewZapConsole(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// source returns the deterministic source for the configured seed, offset
// by salt so that different sizes in one run draw different streams.
func (a *app) source(salt uint64) (*random.Deterministic, error) {
	seed, err := a.cfg.ParseSeed()
	if err != nil {
		return nil, err
	}
	return random.NewDeterministic(seed + salt), nil
}

func (a *app) backend() (modexp.Exponentiator, error) {
	exp, err := a.cfg.Exponentiator()
	if err != nil {
		return nil, errors.WithMessage(err, "backend")
	}
	return exp, nil
}
