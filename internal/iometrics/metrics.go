// Package iometrics collects Prometheus metrics of a conversion run and
// writes them in the text exposition format, suitable for the node
// exporter textfile collector.
package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "taxdump"

// Metrics holds counters of one run. Every run gets its own registry so
// that runs in tests do not share state.
type Metrics struct {
	reg *prometheus.Registry

	// Rows counts processed dump lines per file.
	Rows *prometheus.CounterVec
	// NameClasses counts names.dmp rows per classification label.
	NameClasses *prometheus.CounterVec
	// BadTaxonIDs counts skipped taxon id tokens in citations.dmp.
	BadTaxonIDs prometheus.Counter
	// ExportedRows counts written rows per output table.
	ExportedRows *prometheus.CounterVec
	// Records is the number of aggregate records after ingestion.
	Records prometheus.Gauge
	// Duration is the run time in seconds.
	Duration prometheus.Gauge
}

// New creates metrics registered in a fresh registry.
func New() *Metrics {
	res := &Metrics{
		reg: prometheus.NewRegistry(),
		Rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dump_rows_total",
				Help:      "Number of processed lines per dump file.",
			},
			[]string{"file"},
		),
		NameClasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "name_classes_total",
				Help:      "Number of names.dmp rows per name class.",
			},
			[]string{"class"},
		),
		BadTaxonIDs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bad_citation_taxon_ids_total",
				Help:      "Number of unparsable taxon ids in citations.dmp.",
			},
		),
		ExportedRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exported_rows_total",
				Help:      "Number of rows written per output table.",
			},
			[]string{"table"},
		),
		Records: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "records",
				Help:      "Number of aggregated taxon records.",
			},
		),
		Duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of the conversion run.",
			},
		),
	}

	res.reg.MustRegister(
		res.Rows,
		res.NameClasses,
		res.BadTaxonIDs,
		res.ExportedRows,
		res.Records,
		res.Duration,
	)
	return res
}

// Registry exposes the registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// WriteFile writes all metrics to path in Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return WriteError(path, err)
	}
	return nil
}

// WriteError is returned when the metrics file cannot be written.
func WriteError(path string, err error) error {
	msg := "Cannot write metrics to <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write metrics file %s: %w", path, err),
	}
}
