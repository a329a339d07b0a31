package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/dectab"
	"github.com/aretw0/dectab/internal/presentation/markdown"
	"github.com/aretw0/dectab/internal/presentation/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRecognizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recognize [file]",
		Short: "Recognize a decision table and print its structure",
		Long: `Reads a decision table from a file (or stdin when no file is given) and prints
the recognized table as JSON, YAML or Markdown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			maxSize, _ := cmd.Flags().GetInt("max-input-size")

			logger, err := newLogger(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tk := dectab.New(dectab.WithLogger(logger), dectab.WithMaxInputSize(maxSize))
			dt, err := tk.Recognize(cmd.Context(), text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dt)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(dt); err != nil {
					return err
				}
				return enc.Close()
			case "markdown":
				md := markdown.Generate(dt)
				if f, ok := stdoutFile(cmd); ok && tui.IsTerminal(f) {
					render, err := tui.NewRenderer(0)
					if err != nil {
						return err
					}
					if md, err = render(md); err != nil {
						return err
					}
				}
				_, err := fmt.Fprint(out, md)
				return err
			default:
				return fmt.Errorf("unknown format %q (want json, yaml or markdown)", format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Output format: json, yaml or markdown")
	cmd.Flags().Int("max-input-size", 0, "Maximum input size in bytes (0 uses the default)")
	return cmd
}
