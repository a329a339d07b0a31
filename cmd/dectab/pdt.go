package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newPdtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdt [file]",
		Short: "Print the intermediate structures of the recognizer",
		Long: `Prints the canvas layers, the plane and the recognizer state for a decision table.
Recognition errors are reported after the structures that could be built.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			profile := termenv.Ascii
			if f, ok := stdoutFile(cmd); ok {
				profile = tui.Profile(f)
			}
			tk := dectab.New(dectab.WithLogger(logger))
			return printDecisionTable(cmd.Context(), cmd.OutOrStdout(), tk, text, profile)
		},
	}
	return cmd
}

func printDecisionTable(ctx context.Context, w io.Writer, tk *dectab.Toolkit, text string, profile termenv.Profile) error {
	c, err := tk.Scan(ctx, text)
	if err != nil {
		return err
	}
	tui.NewLayerPrinter(w, profile).PrintAll(c)
	fmt.Fprintln(w)

	r, err := tk.Recognizer(ctx, text)
	if err != nil {
		// Show how far the plane got before failing.
		if p, perr := c.Plane(); perr == nil {
			fmt.Fprint(w, p.String())
		}
		return err
	}
	r.Trace(w)
	return nil
}
