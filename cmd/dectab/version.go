package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/dectab"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dectab",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dectab version %s\n", strings.TrimSpace(dectab.Version))
		},
	}
}
