package main

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/bigint"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/modexp"
	"github.com/coinbase/cb-rsa-go/pkg/cbrsa/prime"
)

func (a *app) powmodCmd() *cobra.Command {
	var (
		bits int
		reps int
	)
	cmd := &cobra.Command{
		Use:   "powmod",
		Short: "Compare modular exponentiation backends",
		Long: `Compute a**b mod m with every backend and check that they agree.

With --bits 1024 the modulus is a fixed 1024-bit prime; other sizes use a
random odd modulus from the seeded source. a is drawn below m and b has
--bits bits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits < 2 {
				return errors.Errorf("--bits must be at least 2, got %d", bits)
			}
			if reps < 1 {
				return errors.Errorf("--reps must be positive, got %d", reps)
			}
			src, err := a.source(uint64(bits))
			if err != nil {
				return err
			}
			var m *bigint.Int
			if bits == 1024 {
				m = prime.Reference1024()
			} else {
				m = bigint.WithBit(bigint.WithBit(src.Bits(bits), 0), uint(bits-1))
			}
			x := src.Below(m)
			y := src.Bits(bits)

			want, err := modexp.Library{}.Exp(new(bigint.Int), x, y, m)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(a.out)
			table.SetHeader([]string{"backend", "time/op", "agrees"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			var mismatched []string
			for _, name := range modexp.Names() {
				exp, err := modexp.ByName(name)
				if err != nil {
					return err
				}
				z := new(bigint.Int)
				start := time.Now()
				for i := 0; i < reps; i++ {
					if _, err := exp.Exp(z, x, y, m); err != nil {
						return errors.WithMessage(err, name)
					}
				}
				perOp := time.Since(start) / time.Duration(reps)
				ok := z.Cmp(want) == 0
				if !ok {
					mismatched = append(mismatched, name)
				}
				table.Append([]string{name, perOp.Round(time.Microsecond).String(), fmt.Sprint(ok)})
			}
			fmt.Fprintf(a.out, "m: %d bits, a**b mod m = %s\n", m.BitLen(), want.Text(a.cfg.Base))
			table.Render()

			if len(mismatched) > 0 {
				return errors.Errorf("backends disagree: %v", mismatched)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 1024, "modulus and exponent size in bits")
	cmd.Flags().IntVar(&reps, "reps", 3, "repetitions per backend")
	return cmd
}
