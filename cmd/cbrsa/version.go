package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinbase/cb-rsa-go/pkg/cbrsa"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.out, "cbrsa %s\n", cbrsa.BuildInfo())
			return err
		},
	}
}
