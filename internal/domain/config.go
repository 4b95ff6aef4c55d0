package domain

// RunConfig is the file-level configuration read from .t4sanity.yaml at the
// scan root. Command-line flags overlay it.
type RunConfig struct {
	Excludes       []string `yaml:"excludes"`
	Strict         bool     `yaml:"strict"`
	IncludeWarning bool     `yaml:"include_warning"`
	Fix            bool     `yaml:"fix"`
}

// DefaultConfig is the configuration used when no config file exists.
func DefaultConfig() RunConfig {
	return RunConfig{}
}
