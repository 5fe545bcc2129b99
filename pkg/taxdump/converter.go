// Package taxdump defines the conversion of the NCBI taxonomy dump into a
// Darwin Core archive.
package taxdump

import (
	"context"
	"time"

	"github.com/gnames/taxdump/pkg/ncbi"
)

// Converter turns the NCBI taxonomy dump into export tables and an output
// archive. Config is provided during construction.
type Converter interface {
	// Convert runs all steps: it prepares the output directory, gets the
	// dump, merges its files into records, exports and packs them.
	Convert(ctx context.Context) (*Result, error)
}

// Result describes a finished, or partially finished, conversion.
type Result struct {
	// Archive is the path of the created output archive. It is empty if
	// the conversion failed.
	Archive string

	// Rows is the number of processed lines per dump file.
	Rows map[string]int

	// Records is the number of exported taxon records.
	Records int

	// Exported is the number of written rows per output file.
	Exported map[string]int

	// Catalog contains name classification labels seen in names.dmp.
	Catalog *ncbi.Catalog

	Duration time.Duration
}
