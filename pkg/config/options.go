package config

import (
	"maps"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/ncbi"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDumpSource sets the URL or local path of the NCBI dump archive.
func OptDumpSource(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dump Source", s) {
			c.Dump.Source = s
		}
	}
}

// OptDumpStoreFile sets the file name of the record store.
// It has to be a plain file name, the store is created inside OutputDir.
func OptDumpStoreFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidFileName("Dump Store File", s) {
			c.Dump.StoreFile = s
		}
	}
}

// OptDumpArchiveName sets the file name of the output archive.
func OptDumpArchiveName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidFileName("Dump Archive Name", s) {
			c.Dump.ArchiveName = s
		}
	}
}

// OptStoreCacheSize sets how many records stay in memory before a flush.
func OptStoreCacheSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Store Cache Size", i) {
			c.Store.CacheSize = i
		}
	}
}

// OptClasses sets overrides for the name classification table.
// The whole map is rejected if any of its values is not a valid effect.
func OptClasses(m map[string]string) Option {
	return func(c *Config) {
		if len(m) == 0 {
			return
		}
		for label, val := range m {
			if _, err := ncbi.ParseEffect(val); err != nil {
				gn.Warn(
					"<em>Classes</em> has invalid value '%s' for '%s', ignoring",
					val, label,
				)
				return
			}
		}
		c.Classes = maps.Clone(m)
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptMetricsFile sets the path of the Prometheus textfile with run metrics.
func OptMetricsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Metrics File", s) {
			c.MetricsFile = s
		}
	}
}

// OptWithProgress enables or disables progress bars.
// Uses pointer to distinguish between unset (nil) and false.
func OptWithProgress(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.WithProgress = b
		}
	}
}

// OptOutputDir sets the output directory.
// Runtime-only field - not in ToOptions().
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.OutputDir = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
