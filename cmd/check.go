package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/writeguide/internal/content"
	"github.com/ziadkadry99/writeguide/internal/progress"
)

var checkMatch string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content store",
	Long: `Loads the manifest, checks its entries, then fetches every listed point
one at a time and reports missing files, malformed JSON and incomplete
points. Exits non-zero when any error is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg, "")
		if err != nil {
			return err
		}
		defer logger.Sync()

		out := cmd.OutOrStdout()
		reporter := progress.NewReporter(cmd.ErrOrStderr())
		started := false

		report, err := content.Check(cmd.Context(), store, content.CheckOptions{
			Match: checkMatch,
			Progress: func(done, total int, id string) {
				if !started {
					reporter.Start(total, "Checking "+store.Source())
					started = true
				}
				reporter.Update(done, id)
			},
		})
		if started {
			reporter.Finish()
		}
		if err != nil {
			return err
		}

		for _, p := range report.Problems {
			fmt.Fprintln(out, p)
		}
		errs := report.Errors()
		logger.Debug("check finished",
			zap.String("source", store.Source()),
			zap.Int("entries", report.Entries),
			zap.Int("checked", report.Checked),
			zap.Int("problems", len(report.Problems)))

		fmt.Fprintf(out, "%d manifest entries, %d points checked, %d errors, %d warnings\n",
			report.Entries, report.Checked, errs, len(report.Problems)-errs)
		if errs > 0 {
			return fmt.Errorf("content store has %d errors", errs)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkMatch, "match", "", "only fetch points whose id matches this glob, e.g. 'unit-1-*'")
	rootCmd.AddCommand(checkCmd)
}
