package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/metrics"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/rsa"
)

type benchResult struct {
	size       int
	keygen     time.Duration
	candidates float64
	public     time.Duration
	crt        time.Duration
	plain      time.Duration
}

func (a *app) benchCmd() *cobra.Command {
	var (
		sizes []int
		keys  int
		ops   int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time key generation and the RSA transforms per key size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keys < 1 || ops < 1 {
				return errors.New("--keys and --ops must be positive")
			}
			exp, err := a.backend()
			if err != nil {
				return err
			}
			tr := rsa.Transformer{Exp: exp}

			var results []benchResult
			for _, size := range sizes {
				reg := prometheus.NewRegistry()
				m, err := metrics.NewKeyGen(reg)
				if err != nil {
					return err
				}
				cfg, err := a.cfg.KeyGenConfig()
				if err != nil {
					return err
				}
				src, err := a.source(uint64(size))
				if err != nil {
					return err
				}
				cfg.Source = src
				cfg.Metrics = m
				cfg.CRT = true
				cfg.Logger = a.log
				gen, err := rsa.NewKeyGenerator(cfg)
				if err != nil {
					return err
				}

				res := benchResult{size: size}
				var pub *rsa.PublicKey
				var priv *rsa.PrivateKey
				start := time.Now()
				for i := 0; i < keys; i++ {
					pub, priv, err = gen.GenerateKey(cmd.Context(), size)
					if err != nil {
						return err
					}
				}
				res.keygen = time.Since(start) / time.Duration(keys)
				drawn, err := metrics.Sum(reg, metrics.CandidatesName)
				if err != nil {
					return err
				}
				res.candidates = drawn / float64(keys)

				msg := src.Below(pub.N)
				c := new(bigint.Int)
				if res.public, err = timeOps(ops, func() error {
					_, err := tr.Public(c, msg, pub)
					return err
				}); err != nil {
					return err
				}
				out := new(bigint.Int)
				if res.crt, err = timeOps(ops, func() error {
					_, err := tr.Private(out, c, priv)
					return err
				}); err != nil {
					return err
				}
				priv.DropCRT()
				if res.plain, err = timeOps(ops, func() error {
					_, err := tr.Private(out, c, priv)
					return err
				}); err != nil {
					return err
				}
				if out.Cmp(msg) != 0 {
					return errors.Errorf("%d-bit round trip failed", size)
				}
				results = append(results, res)
			}

			fmt.Fprintf(a.out, "backend %s, %d key(s) and %d op(s) per size\n", exp.Name(), keys, ops)
			table := tablewriter.NewWriter(a.out)
			table.SetHeader([]string{"size", "keygen", "candidates/key", "public", "private crt", "private plain"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for _, r := range results {
				table.Append([]string{
					strconv.Itoa(r.size),
					r.keygen.Round(time.Millisecond).String(),
					strconv.FormatFloat(r.candidates, 'f', 1, 64),
					r.public.Round(time.Microsecond).String(),
					r.crt.Round(time.Microsecond).String(),
					r.plain.Round(time.Microsecond).String(),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1024, 2048, 3072, 4096}, "key sizes to measure")
	cmd.Flags().IntVar(&keys, "keys", 1, "keys generated per size")
	cmd.Flags().IntVar(&ops, "ops", 16, "transforms timed per size")
	return cmd
}

// timeOps runs f n times and returns the mean duration.
func timeOps(n int, f func() error) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := f(); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(n), nil
}
