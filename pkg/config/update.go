package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, OutputDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Dump.Source
	if s != "" {
		res = append(res, OptDumpSource(s))
	}
	s = c.Dump.StoreFile
	if s != "" {
		res = append(res, OptDumpStoreFile(s))
	}
	s = c.Dump.ArchiveName
	if s != "" {
		res = append(res, OptDumpArchiveName(s))
	}

	i = c.Store.CacheSize
	if i > 0 {
		res = append(res, OptStoreCacheSize(i))
	}

	if len(c.Classes) > 0 {
		res = append(res, OptClasses(c.Classes))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.MetricsFile
	if s != "" {
		res = append(res, OptMetricsFile(s))
	}
	if c.WithProgress != nil {
		res = append(res, OptWithProgress(c.WithProgress))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidFileName(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	if filepath.Base(s) != s || s == "." || s == ".." {
		gn.Warn("<em>%s</em> has to be a file name without directories, ignoring '%s'",
			name, s)
		return false
	}
	return true
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
