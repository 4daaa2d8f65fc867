// Package config provides configuration management for the arcade catalog.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Default values come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, stats cache)
//   - Database: relational export target (sqlite, mysql, postgres)
//   - Storage: S3/MinIO credentials, bucket and prefix for published exports
//   - Log: Logging level and format
//   - Sources: data directory and per-source path overrides
//   - Export: output directory and enabled exporters
//   - Filter: default filter pipeline
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sources.DataDir)
package config
