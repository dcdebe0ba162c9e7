package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

func (a *app) roundtripCmd() *cobra.Command {
	var (
		size int
		msg  string
	)
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encrypt and decrypt a message with a freshly generated key",
		Long: `Generate a seeded key, apply the public transform to --msg and check
that both the CRT and the plain private transform recover it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := new(bigint.Int).SetString(msg, 0)
			if err != nil {
				return err
			}
			exp, err := a.backend()
			if err != nil {
				return err
			}
			cfg, err := a.cfg.KeyGenConfig()
			if err != nil {
				return err
			}
			cfg.CRT = true
			cfg.Logger = a.log
			src, err := a.source(0)
			if err != nil {
				return err
			}
			cfg.Source = src

			gen, err := rsa.NewKeyGenerator(cfg)
			if err != nil {
				return err
			}
			pub, priv, err := gen.GenerateKey(cmd.Context(), size)
			if err != nil {
				return err
			}

			tr := rsa.Transformer{Exp: exp}
			c, err := tr.Public(new(bigint.Int), m, pub)
			if err != nil {
				return err
			}
			viaCRT, err := tr.Private(new(bigint.Int), c, priv)
			if err != nil {
				return err
			}
			priv.DropCRT()
			viaD, err := tr.Private(new(bigint.Int), c, priv)
			if err != nil {
				return err
			}

			base := a.cfg.Base
			fmt.Fprintf(a.out, "backend    = %s\n", exp.Name())
			fmt.Fprintf(a.out, "message    = %s\n", m.Text(base))
			fmt.Fprintf(a.out, "ciphertext = %s\n", c.Text(base))
			fmt.Fprintf(a.out, "crt        = %s\n", viaCRT.Text(base))
			fmt.Fprintf(a.out, "plain      = %s\n", viaD.Text(base))

			if viaCRT.Cmp(m) != 0 || viaD.Cmp(m) != 0 {
				return errors.New("round trip did not recover the message")
			}
			fmt.Fprintln(a.out, "round trip ok")
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 2048, "modulus size in bits")
	cmd.Flags().StringVar(&msg, "msg", "0x12345678", "message, with optional 0x prefix")
	return cmd
}
