package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coinbase/cb-rsa-go/internal/clicfg"
	"github.com/coinbase/cb-rsa-go/internal/stdrsa"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/random"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

func (a *app) keygenCmd() *cobra.Command {
	var (
		size      int
		useCrypto bool
		check     bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair and print it",
		Long: `Generate an RSA key pair and print all of its values.

Unless --random is given, candidates come from the deterministic source
seeded with --seed, so the same invocation always prints the same key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.cfg.KeyGenConfig()
			if err != nil {
				return err
			}
			cfg.Logger = a.log
			if useCrypto {
				cfg.Source = random.NewCrypto()
			} else {
				src, err := a.source(0)
				if err != nil {
					return err
				}
				cfg.Source = src
			}

			gen, err := rsa.NewKeyGenerator(cfg)
			if err != nil {
				return err
			}
			_, priv, err := gen.GenerateKey(cmd.Context(), size)
			if err != nil {
				return err
			}
			if check {
				if err := stdrsa.Validate(priv); err != nil {
					return err
				}
			}
			return printKey(a.out, priv, a.cfg.Base)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&size, "size", 2048, "modulus size in bits, a multiple of 1024")
	flags.BoolVar(&useCrypto, "random", false, "draw candidates from crypto/rand instead of the seed")
	flags.BoolVar(&check, "check", false, "cross-check the key with crypto/rsa")
	flags.Bool("crt", true, "include CRT parameters")
	flags.Int("exp", rsa.DefaultExponent, "public exponent")
	a.bind(flags, "crt", clicfg.KeyCRT)
	a.bind(flags, "exp", clicfg.KeyExponent)
	return cmd
}

type keyField struct {
	name string
	v    *bigint.Int
}

func printKey(w io.Writer, k *rsa.PrivateKey, base int) error {
	fields := []keyField{{"N", k.N}, {"e", k.E}, {"p", k.P}, {"q", k.Q}, {"d", k.D}}
	if k.HasCRT() {
		fields = append(fields, keyField{"dp", k.CRT.Dp}, keyField{"dq", k.CRT.Dq}, keyField{"qinv", k.CRT.QInv})
	}
	if _, err := fmt.Fprintf(w, "size = %d\n", k.Size); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s = %s\n", f.name, f.v.Text(base)); err != nil {
			return err
		}
	}
	return nil
}
