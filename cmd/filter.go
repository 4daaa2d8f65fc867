package cmd

import (
	"fmt"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/filter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filterKindsFlag string
	filterJSON      bool
)

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Show which machines the filters would remove",
	Long: `Ingests every source and prints the removal plan for the selected filters
without changing anything. Each machine is reported once, under the first
filter that matched it. Use the export command to apply the plan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		kinds, err := a.filterKinds(filterKindsFlag)
		if err != nil {
			return err
		}
		if len(kinds) == 0 {
			return fmt.Errorf("no filters selected")
		}

		cat, err := a.load()
		if err != nil {
			return fmt.Errorf("failed to prepare catalog: %w", err)
		}

		var plan *filter.Plan
		err = cat.Exclusive(func(s *catalog.Store, _ *catalog.Indices) error {
			plan, err = filter.BuildPlan(s, kinds...)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to build plan: %w", err)
		}

		a.logger.Info("Filter plan built",
			zap.Int("scanned", plan.Summary.Scanned),
			zap.Int("removals", plan.Summary.Removals))

		if filterJSON {
			return writeStructured(cmd.OutOrStdout(), "json", plan)
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVar(&filterKindsFlag, "filters", "", "Comma separated filters (default from config, \"none\" disables)")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "Output the plan as JSON")
}
