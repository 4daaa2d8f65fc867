package cmd

import (
	"fmt"

	"arcade-catalog/core/database"
	"arcade-catalog/core/storage"
	"arcade-catalog/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	integrityJSON      bool
	integritySchema    bool
	integrityPublished bool
)

// integrityResult is the combined output of the integrity command.
type integrityResult struct {
	Sources   []checks.SourceStatus `json:"sources"`
	Schema    *checks.SchemaReport  `json:"schema,omitempty"`
	Published *publishedResult      `json:"published,omitempty"`
}

type publishedResult struct {
	Bucket  string   `json:"bucket"`
	Missing []string `json:"missing"`
}

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check sources and export targets",
	Long: `Reports which source files are present. With --schema the relational
export database is compared against the expected tables; with --published the
storage bucket is checked for every file a complete export uploads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		result := integrityResult{Sources: checks.CheckSources(a.paths)}

		if integritySchema {
			db, err := database.Connect(a.cfg.Database)
			if err != nil {
				return fmt.Errorf("database connection required: %w", err)
			}
			if result.Schema, err = checks.CheckSchema(db); err != nil {
				return fmt.Errorf("schema check failed: %w", err)
			}
		}

		if integrityPublished {
			client, err := storage.NewClient(a.cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			missing, err := checks.CheckPublished(cmd.Context(), client, a.cfg.Storage.Bucket,
				a.cfg.Storage.Prefix, a.cfg.Export.ExpectedFiles())
			if err != nil {
				return fmt.Errorf("published check failed: %w", err)
			}
			result.Published = &publishedResult{Bucket: a.cfg.Storage.Bucket, Missing: missing}
		}

		if integrityJSON {
			if err := writeStructured(cmd.OutOrStdout(), "json", result); err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			printSources(out, result.Sources)
			if result.Schema != nil {
				fmt.Fprintln(out)
				printSchema(out, result.Schema)
			}
			if result.Published != nil {
				fmt.Fprintln(out)
				printPublished(out, result.Published)
			}
		}

		a.logger.Info("Integrity check completed",
			zap.Bool("sources_ready", checks.SourcesReady(result.Sources)),
			zap.Bool("schema_checked", result.Schema != nil),
			zap.Bool("published_checked", result.Published != nil))

		if !checks.SourcesReady(result.Sources) {
			return fmt.Errorf("required sources are missing")
		}
		if result.Schema != nil && !result.Schema.Matched {
			return fmt.Errorf("export schema does not match")
		}
		if result.Published != nil && len(result.Published.Missing) > 0 {
			return fmt.Errorf("%d published files are missing", len(result.Published.Missing))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Output the results as JSON")
	integrityCmd.Flags().BoolVar(&integritySchema, "schema", false, "Check the relational export schema")
	integrityCmd.Flags().BoolVar(&integrityPublished, "published", false, "Check the published export in object storage")
}
