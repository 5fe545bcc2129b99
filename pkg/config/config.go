// Package config provides configuration management for taxdump.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI arguments > config.yaml > defaults.
// There are no environment variables, the only CLI argument is the output
// directory.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions and config.yaml):
//   - Dump: source, store_file, archive_name
//   - Store: cache_size
//   - Classes: per-label overrides of the name classification table
//   - Log: level, format, destination
//   - General: metrics_file, with_progress
//
// Runtime-only fields:
//   - OutputDir (CLI argument)
//   - HomeDir (set once at startup)
package config

// Config represents the complete taxdump configuration.
type Config struct {
	// Dump describes where the NCBI dump comes from and how output files
	// are named.
	Dump DumpConfig `mapstructure:"dump" yaml:"dump"`

	// Store contains settings of the disk-backed record store.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Classes overrides effects of name classification labels.
	// Keys are labels from names.dmp (e.g. "authority"), values are
	// "primary", "primary:<priority>", "synonym", "vernacular" or "none".
	Classes map[string]string `mapstructure:"classes" yaml:"classes"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// MetricsFile is a path where run metrics are written in Prometheus
	// text format. Empty string disables metrics output.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// WithProgress enables progress bars for download and ingestion.
	// Uses pointer to distinguish between unset (nil) and false.
	WithProgress *bool `mapstructure:"with_progress" yaml:"with_progress"`

	// OutputDir is the directory where export tables, metadata, the store
	// file and the final archive are created. Its content is removed at the
	// start of every run.
	OutputDir string

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DumpConfig describes the input dump and output file names.
type DumpConfig struct {
	// Source is either a URL or a path to a local new_taxdump.zip file.
	Source string `mapstructure:"source" yaml:"source"`

	// StoreFile is the name of the record store file inside OutputDir.
	// It is excluded from the output archive.
	StoreFile string `mapstructure:"store_file" yaml:"store_file"`

	// ArchiveName is the name of the output archive inside OutputDir.
	ArchiveName string `mapstructure:"archive_name" yaml:"archive_name"`
}

// StoreConfig contains settings of the record store.
type StoreConfig struct {
	// CacheSize is the maximum number of records kept in memory before
	// they are flushed to disk in one transaction. Larger values are faster
	// but use more memory.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	withProgress := true
	res := &Config{
		Dump: DumpConfig{
			Source:      DumpURL,
			StoreFile:   "store.sqlite",
			ArchiveName: "ncbi.zip",
		},
		Store: StoreConfig{
			CacheSize: 100_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: &withProgress,
		OutputDir:    "output",
	}

	return res
}

// ShowProgress reports if progress bars should be drawn.
func (c *Config) ShowProgress() bool {
	return c.WithProgress != nil && *c.WithProgress
}
