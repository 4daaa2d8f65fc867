package sources

import "os"

// Config holds the location of the source files.
type Config struct {
	// DataDir is scanned for files matching each source pattern.
	DataDir string `mapstructure:"data_dir" default:"data"`
	// MAME overrides the located MAME catalog path.
	MAME string `mapstructure:"mame" default:""`
	// Catver overrides the located catver.ini path.
	Catver string `mapstructure:"catver" default:""`
	// Series overrides the located series.ini path.
	Series string `mapstructure:"series" default:""`
	// Languages overrides the located languages.ini path.
	Languages string `mapstructure:"languages" default:""`
	// NPlayers overrides the located nplayers.ini path.
	NPlayers string `mapstructure:"nplayers" default:""`
	// History overrides the located history.xml path.
	History string `mapstructure:"history" default:""`
	// Resources overrides the located resources dat path.
	Resources string `mapstructure:"resources" default:""`
}

func (c Config) overrides() map[Kind]string {
	return map[Kind]string{
		KindMAME:      c.MAME,
		KindCatver:    c.Catver,
		KindSeries:    c.Series,
		KindLanguages: c.Languages,
		KindNPlayers:  c.NPlayers,
		KindHistory:   c.History,
		KindResources: c.Resources,
	}
}

// Resolve returns the path of every source: the explicit override when set,
// otherwise the file located under DataDir. A missing DataDir is not an
// error; the sources it would have provided are simply unresolved.
func (c Config) Resolve() (map[Kind]string, error) {
	paths := make(map[Kind]string, len(Kinds))
	if _, err := os.Stat(c.DataDir); c.DataDir != "" && err == nil {
		located, err := Locate(c.DataDir)
		if err != nil {
			return nil, err
		}
		for k, p := range located {
			paths[k] = p
		}
	}
	for k, p := range c.overrides() {
		if p != "" {
			paths[k] = p
		}
	}
	return paths, nil
}
