package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arcade-catalog/core/catalog"
	"arcade-catalog/core/database"
	"arcade-catalog/core/filter"
	"arcade-catalog/core/storage"
	"arcade-catalog/feature/export"
	"arcade-catalog/feature/export/relational"
	"arcade-catalog/feature/pipeline"
	"arcade-catalog/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportFilters    string
	exportDryRun     bool
	exportYes        bool
	exportOut        string
	exportGzip       bool
	exportRelational bool
	exportPublish    bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the catalog and export it",
	Long: `Ingests every source, applies the selected filters, normalizes the result
and runs the enabled exporters (CSV, JSON and the relational database).
Removing machines requires confirmation; --dry-run only prints the plans.
With publishing enabled the output directory is uploaded to object storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()
		applyExportFlags(cmd, &a.cfg.Export)

		kinds, err := a.filterKinds(exportFilters)
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			Filters: kinds,
			Filter:  filter.Options{DryRun: exportDryRun, Confirmed: true},
		}
		if len(kinds) > 0 && !exportDryRun {
			if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout(), exportYes) {
				return fmt.Errorf("aborted by user")
			}
		}

		cat := catalog.New()
		res, err := pipeline.Prepare(cat, a.paths, opts, a.logger)
		if err != nil {
			return fmt.Errorf("failed to prepare catalog: %w", err)
		}
		for kind, msg := range res.Ingest.Errors {
			a.logger.Warn("Source skipped", zap.String("source", string(kind)), zap.String("error", msg))
		}

		if exportDryRun {
			for _, plan := range res.Plans {
				printPlan(cmd.OutOrStdout(), plan)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			a.logger.Info("Dry run finished, nothing exported", zap.Int("machines", res.Machines))
			return nil
		}

		a.logger.Info("Catalog prepared",
			zap.Int("machines", res.Machines),
			zap.Int("removed", res.Removed),
			zap.Duration("duration", res.Duration))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		exporters := a.cfg.Export.FileExporters()
		if a.cfg.Export.Relational {
			db, err := database.Connect(a.cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			exporters = append(exporters, relational.NewWriter(db, a.cfg.Export.BatchSize, a.logger))
		}
		if len(exporters) == 0 {
			return fmt.Errorf("no exporters enabled")
		}

		results := export.Run(ctx, cat, exporters, a.logger)
		if export.Failed(results) {
			return fmt.Errorf("one or more exporters failed")
		}

		if !a.cfg.Export.Publish {
			return nil
		}
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		report, err := publish.NewPublisher(client, a.cfg.Storage, a.cfg.Export.Workers, a.logger).
			Publish(ctx, a.cfg.Export.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to publish export: %w", err)
		}
		a.logger.Info("Export published",
			zap.String("bucket", report.Bucket),
			zap.Int("uploaded", len(report.Uploaded)),
			zap.Int("removed", len(report.Removed)),
			zap.Int64("bytes", report.Bytes))
		return nil
	},
}

// applyExportFlags lets explicitly set flags override the configuration.
func applyExportFlags(cmd *cobra.Command, cfg *export.Config) {
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = exportOut
	}
	if flags.Changed("gzip") {
		cfg.Gzip = exportGzip
	}
	if flags.Changed("relational") {
		cfg.Relational = exportRelational
	}
	if flags.Changed("publish") {
		cfg.Publish = exportPublish
	}
}

func init() {
	RootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFilters, "filters", "", "Comma separated filters (default from config, \"none\" disables)")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "Print the removal plans without exporting")
	exportCmd.Flags().BoolVar(&exportYes, "yes", false, "Skip confirmation prompt")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output directory (overrides config)")
	exportCmd.Flags().BoolVar(&exportGzip, "gzip", false, "Gzip JSON output")
	exportCmd.Flags().BoolVar(&exportRelational, "relational", false, "Write the relational database")
	exportCmd.Flags().BoolVar(&exportPublish, "publish", false, "Upload the output directory to object storage")
}
