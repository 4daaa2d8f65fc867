package filter

import "strings"

// Config holds the default filter pipeline.
type Config struct {
	// Kinds is a comma-separated list of filters applied by the pipeline.
	Kinds string `mapstructure:"kinds" default:"all"`
}

// Parsed resolves the configured filter names.
func (c Config) Parsed() ([]Kind, error) {
	return ParseKinds(strings.Split(c.Kinds, ","))
}
