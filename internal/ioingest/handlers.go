package ioingest

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/taxdump/pkg/ncbi"
)

// Column positions in dump files.
// See https://ftp.ncbi.nlm.nih.gov/pub/taxonomy/new_taxdump/taxdump_readme.txt
const (
	nodeKey      = 0
	nodeParent   = 1
	nodeRank     = 2
	nodeHidden   = 10
	nodeComments = 12

	nameKey   = 0
	nameText  = 1
	nameClass = 3

	typeKey      = 0
	typeCitation = 1
	typeStatus   = 2

	citMedline = 2
	citPubmed  = 3
	citURL     = 4
	citText    = 5
	citTaxa    = 6
)

// unescapeCitation removes backslash escaping of citations.dmp text.
func unescapeCitation(s string) string {
	s = strings.ReplaceAll(s, `\\`, `\`)
	return strings.ReplaceAll(s, `\"`, `"`)
}

// key parses the mandatory taxon id of a row.
func (in *Ingester) key(row ncbi.Row, col int) (int, error) {
	val := row.Field(col)
	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, KeyError(in.file, in.line, val, err)
	}
	return res, nil
}

// node handles nodes.dmp. Node data always overwrites what the record had.
func (in *Ingester) node(row ncbi.Row) error {
	key, err := in.key(row, nodeKey)
	if err != nil {
		return err
	}

	parent := key
	if val := row.Field(nodeParent); val != "" {
		if parent, err = strconv.Atoi(val); err != nil {
			return ParentKeyError(in.file, in.line, val, err)
		}
	}

	val := row.Field(nodeHidden)
	hidden, err := strconv.Atoi(val)
	if err != nil {
		return HiddenFlagError(in.file, in.line, val, err)
	}

	r, err := in.store.GetOrCreate(key)
	if err != nil {
		return err
	}
	r.ParentKey = &parent
	r.Rank = row.Field(nodeRank)
	r.Hidden = hidden == 1
	r.Comments = row.Field(nodeComments)
	return nil
}

// name handles names.dmp.
func (in *Ingester) name(row ncbi.Row) error {
	key, err := in.key(row, nameKey)
	if err != nil {
		return err
	}

	label := row.Field(nameClass)
	in.catalog.Add(label, row)
	in.metrics.NameClasses.WithLabelValues(label).Inc()

	r, err := in.store.GetOrCreate(key)
	if err != nil {
		return err
	}

	if eff, ok := in.classes.Effect(label); ok {
		r.ApplyName(row.Field(nameText), eff)
	}
	return nil
}

// typeMaterial handles typematerial.dmp.
func (in *Ingester) typeMaterial(row ncbi.Row) error {
	key, err := in.key(row, typeKey)
	if err != nil {
		return err
	}

	r, err := in.store.GetOrCreate(key)
	if err != nil {
		return err
	}
	r.TypeMaterial = append(r.TypeMaterial, ncbi.TypeMaterial{
		Citation: row.Field(typeCitation),
		Status:   row.Field(typeStatus),
	})
	return nil
}

// citation handles citations.dmp. One citation can belong to many taxa.
// A taxon id that is not a number is reported and skipped, the rest of the
// row is still applied.
func (in *Ingester) citation(row ncbi.Row) error {
	ids := strings.Fields(row.Field(citTaxa))
	if len(ids) == 0 {
		return nil
	}

	cit := ncbi.Citation{
		MedlineID: row.Field(citMedline),
		PubmedID:  row.Field(citPubmed),
		URL:       row.Field(citURL),
		Citation:  unescapeCitation(row.Field(citText)),
	}

	for _, id := range ids {
		key, err := strconv.Atoi(id)
		if err != nil {
			slog.Warn("Bad citation taxonID value",
				"value", id, "file", in.file, "line", in.line)
			in.metrics.BadTaxonIDs.Inc()
			continue
		}

		r, err := in.store.GetOrCreate(key)
		if err != nil {
			return err
		}
		r.Citations = append(r.Citations, cit)
	}
	return nil
}
