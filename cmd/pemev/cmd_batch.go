package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var flags struct {
		presets bool
		out     string
		strict  bool
	}
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Evaluate every scenario of a YAML file",
		Long: `Batch evaluates each scenario independently; an invalid row is reported and
the rest of the batch still runs.

The file lists scenarios under a "scenarios" key:

  scenarios:
    - name: balanced
      growth_factor: 1000
      years: 50
      equity: 0.95
      sustainability: 0.98
    - name: hinted
      growth_factor: 10
      years: 5
      robust: true

With --presets (or no FILE) the reference paths are evaluated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []scenario.NamedScenario
			if flags.presets || len(args) == 0 {
				items = scenario.Presets()
			}
			if len(args) == 1 {
				loaded, err := scenario.LoadBatch(args[0])
				if err != nil {
					return err
				}
				items = append(items, loaded...)
			}
			if len(items) == 0 {
				return fmt.Errorf("batch: no scenarios")
			}

			st, err := a.build(cmd.Context())
			if err != nil {
				return err
			}
			entries := st.eval.EvaluateBatch(items)

			w, closeFn, err := openOutput(cmd.OutOrStdout(), flags.out)
			if err != nil {
				return err
			}
			if err := a.writeResults(w, cmd, st, entries); err != nil {
				_ = closeFn()
				return err
			}
			if err := closeFn(); err != nil {
				return err
			}

			if flags.strict {
				var errs []error
				for _, e := range entries {
					if e.Err != nil {
						errs = append(errs, fmt.Errorf("%s: %w", e.Name, e.Err))
					}
				}
				if len(errs) > 0 {
					return errors.Join(errs...)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&flags.presets, "presets", false, "include the reference paths")
	f.StringVarP(&flags.out, "out", "o", "", "write the report to a file instead of stdout")
	f.BoolVar(&flags.strict, "strict", false, "exit non-zero when any scenario is invalid")
	return cmd
}
