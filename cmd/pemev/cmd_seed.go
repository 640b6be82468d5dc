package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/report"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Derive a weight triple from entropy and show where it came from",
		Long: `Seed fetches 24 bytes from the entropy source (the remote service, or
--entropy-hex), decodes them into energy/equity/sustainability weights and
reports the path taken: primary, local (primary unavailable) or fallback
(bytes could not be decoded).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, prov, err := seed(cmd.Context(), a.cfg.Entropy)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch a.output {
			case report.Text:
				_, err := fmt.Fprintf(out, "Weights: %s (sum %.6f)\nSource: %s\n", t, t.Sum(), prov)
				return err
			case report.JSON, report.YAML:
				d := report.NewDocument(t, a.cfg.Threshold)
				d.Provenance = prov.String()
				return d.Encode(out, a.output)
			default:
				return unsupported(cmd, a.output)
			}
		},
	}
}
