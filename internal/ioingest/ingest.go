// Package ioingest streams NCBI dump files into the record store.
//
// Every dump file has its own handler. A handler gets one tokenized row at
// a time, looks up the record of the row's taxon with a single
// get-or-create call and mutates it in place. Files are processed one at a
// time, in the order they are given.
package ioingest

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/gnames/taxdump/internal/iometrics"
	"github.com/gnames/taxdump/pkg/ncbi"
)

// maxLine is the longest dump line accepted by the scanner.
const maxLine = 16 * 1024 * 1024

type handler func(row ncbi.Row) error

// Ingester dispatches dump files to their handlers.
type Ingester struct {
	store    ncbi.Store
	classes  ncbi.ClassTable
	catalog  *ncbi.Catalog
	metrics  *iometrics.Metrics
	progress bool

	handlers map[string]handler

	// file and line of the row being processed, for error messages.
	file string
	line int
}

// Option configures an Ingester.
type Option func(*Ingester)

// OptClasses replaces the default name classification table.
func OptClasses(t ncbi.ClassTable) Option {
	return func(in *Ingester) {
		if t != nil {
			in.classes = t
		}
	}
}

// OptMetrics makes the Ingester report into the given metrics.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(in *Ingester) {
		if m != nil {
			in.metrics = m
		}
	}
}

// OptProgress turns progress bars on or off.
func OptProgress(b bool) Option {
	return func(in *Ingester) {
		in.progress = b
	}
}

// New creates an Ingester writing into store. Name classification labels
// are recorded into catalog.
func New(store ncbi.Store, catalog *ncbi.Catalog, opts ...Option) *Ingester {
	res := &Ingester{
		store:   store,
		classes: ncbi.DefaultClasses(),
		catalog: catalog,
		metrics: iometrics.New(),
	}
	for _, opt := range opts {
		opt(res)
	}

	res.handlers = map[string]handler{
		ncbi.NodesFile:        res.node,
		ncbi.NamesFile:        res.name,
		ncbi.TypeMaterialFile: res.typeMaterial,
		ncbi.CitationsFile:    res.citation,
	}
	return res
}

// Accepts reports if a file with the given name is merged into records.
// Names are compared case-insensitively.
func (in *Ingester) Accepts(file string) bool {
	_, ok := in.handlers[strings.ToLower(file)]
	return ok
}

// Ingest reads all lines of r and merges them into the store using the
// handler of the file. size is the expected number of bytes, used only
// for the progress bar, and can be 0. Files without a handler are skipped.
// Returns the number of processed (non-blank) lines.
func (in *Ingester) Ingest(
	ctx context.Context,
	file string,
	r io.Reader,
	size int64,
) (int, error) {
	h, ok := in.handlers[strings.ToLower(file)]
	if !ok {
		slog.Info("Skipping dump file", "file", file)
		return 0, nil
	}

	if in.progress {
		bar := newProgressBar(size, file+": ")
		defer bar.Finish()
		r = bar.NewProxyReader(r)
	}

	in.file = strings.ToLower(file)
	in.line = 0
	rowsCounter := in.metrics.Rows.WithLabelValues(in.file)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var count int
	for sc.Scan() {
		in.line++
		if in.line%1000 == 0 {
			select {
			case <-ctx.Done():
				return count, CancelledError(ctx.Err())
			default:
			}
		}

		row := ncbi.Tokenize(sc.Text())
		if row == nil {
			continue
		}
		if err := h(row); err != nil {
			return count, err
		}
		count++
		rowsCounter.Inc()
	}
	if err := sc.Err(); err != nil {
		return count, ReadError(file, in.line, err)
	}

	slog.Info("Dump file processed", "file", file, "rows", count)
	return count, nil
}
