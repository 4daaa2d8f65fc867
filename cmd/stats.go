package cmd

import (
	"fmt"

	"arcade-catalog/feature/browse"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	statsFormat string
	statsTop    int
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print catalog statistics",
	Long: `Ingests every source, normalizes the catalog and prints aggregate counts
together with the most common manufacturers, series, languages, players and
categories. Nothing is filtered out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		cat, err := a.load()
		if err != nil {
			return fmt.Errorf("failed to prepare catalog: %w", err)
		}

		report, err := browse.BuildReport(cat, statsTop)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		a.logger.Debug("Report built", zap.Int("machines", report.Stats.Machines))

		if statsFormat == "table" {
			printReport(cmd.OutOrStdout(), report)
			return nil
		}
		return writeStructured(cmd.OutOrStdout(), statsFormat, report)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "Output format: table, json or yaml")
	statsCmd.Flags().IntVar(&statsTop, "top", browse.DefaultTop, "Number of entries per top list")
}
