// Package ioexport writes merged taxon records as a Darwin Core archive
// directory: four tab-separated tables and a meta.xml descriptor.
package ioexport

import (
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gnames/taxdump/internal/iometrics"
	"github.com/gnames/taxdump/pkg/ncbi"
)

// Output file names.
const (
	TaxaFile         = "taxa.txt"
	VernacularFile   = "vernacular.txt"
	TypeMaterialFile = "typematerial.txt"
	CitationsFile    = "citations.txt"
	MetaFile         = "meta.xml"
)

//go:embed meta.xml
var metaXML []byte

// Stats summarizes an export.
type Stats struct {
	// Records is the number of exported records.
	Records int
	// Rows is the number of written rows per file name.
	Rows map[string]int
}

type tables struct {
	taxa, vernacular, typeMaterial, citations *table
}

func (t *tables) all() []*table {
	return []*table{t.taxa, t.vernacular, t.typeMaterial, t.citations}
}

// Export writes all records of the store into dir, in ascending key order.
// If m is nil the counts are not reported anywhere but Stats.
func Export(store ncbi.Store, dir string, m *iometrics.Metrics) (*Stats, error) {
	if m == nil {
		m = iometrics.New()
	}

	total, err := store.Len()
	if err != nil {
		return nil, err
	}
	slog.Info("Exporting records", "records", total, "dir", dir)

	ts, err := openTables(dir)
	if err != nil {
		return nil, err
	}

	var count int
	for r, rerr := range store.Sorted() {
		if rerr != nil {
			err = rerr
			break
		}
		ts.add(r)
		count++
	}

	for _, t := range ts.all() {
		if cerr := t.close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, err
	}

	if err = writeMeta(dir); err != nil {
		return nil, err
	}

	res := &Stats{Records: count, Rows: make(map[string]int)}
	for _, t := range ts.all() {
		res.Rows[t.name] = t.rows
		m.ExportedRows.WithLabelValues(tableLabel(t.name)).Add(float64(t.rows))
	}
	m.Records.Set(float64(count))

	slog.Info("Export finished",
		"records", count,
		"taxa", res.Rows[TaxaFile],
		"vernacular", res.Rows[VernacularFile],
		"typematerial", res.Rows[TypeMaterialFile],
		"citations", res.Rows[CitationsFile],
	)
	return res, nil
}

func openTables(dir string) (*tables, error) {
	names := []string{TaxaFile, VernacularFile, TypeMaterialFile, CitationsFile}
	opened := make([]*table, 0, len(names))
	for _, name := range names {
		t, err := createTable(dir, name)
		if err != nil {
			for _, o := range opened {
				_ = o.close()
			}
			return nil, err
		}
		opened = append(opened, t)
	}
	res := &tables{
		taxa:         opened[0],
		vernacular:   opened[1],
		typeMaterial: opened[2],
		citations:    opened[3],
	}
	return res, nil
}

// add writes all rows of one record.
func (t *tables) add(r *ncbi.Record) {
	key := strconv.Itoa(r.Key)
	var parent string
	if r.ParentKey != nil {
		parent = strconv.Itoa(*r.ParentKey)
	}

	t.taxa.write(key, parent, "", r.Rank, r.Name, r.Comments)
	for _, v := range r.Vernacular {
		t.vernacular.write(key, v)
	}
	for _, tm := range r.TypeMaterial {
		t.typeMaterial.write(key, tm.Citation, tm.Status)
	}
	for _, c := range r.Citations {
		t.citations.write(key, c.Identifier(), c.Citation)
	}
	for i, s := range r.Synonyms {
		t.taxa.write(SynonymKey(r.Key, i+1), "", key, "", s, "")
	}
}

// SynonymKey returns the taxonID of the n-th (1-based) synonym of a
// record.
func SynonymKey(key, n int) string {
	return strconv.Itoa(key) + "-s" + strconv.Itoa(n)
}

func writeMeta(dir string) error {
	path := filepath.Join(dir, MetaFile)
	if err := os.WriteFile(path, metaXML, 0644); err != nil {
		return MetaError(path, err)
	}
	return nil
}

// tableLabel is the metrics label of an output file.
func tableLabel(file string) string {
	return file[:len(file)-len(filepath.Ext(file))]
}
