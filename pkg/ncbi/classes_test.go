package ncbi_test

import (
	"testing"

	"github.com/gnames/taxdump/pkg/ncbi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClasses(t *testing.T) {
	classes := ncbi.DefaultClasses()

	tests := []struct {
		label string
		kind  ncbi.EffectKind
	}{
		{"scientific name", ncbi.Primary},
		{"authority", ncbi.Primary},
		{"synonym", ncbi.Synonym},
		{"equivalent name", ncbi.Synonym},
		{"misnomer", ncbi.Synonym},
		{"misspelling", ncbi.Synonym},
		{"common name", ncbi.Vernacular},
		{"genbank common name", ncbi.Vernacular},
		{"acronym", ncbi.None},
		{"in-part", ncbi.None},
		{"includes", ncbi.None},
		{"blast name", ncbi.None},
		{"genbank synonym", ncbi.None},
		{"genbank acronym", ncbi.None},
		{"type material", ncbi.None},
	}

	for _, v := range tests {
		eff, ok := classes.Effect(v.label)
		assert.True(t, ok, v.label)
		assert.Equal(t, v.kind, eff.Kind, v.label)
	}

	sci, _ := classes.Effect("scientific name")
	auth, _ := classes.Effect("authority")
	assert.Greater(t, sci.Priority, auth.Priority)

	_, ok := classes.Effect("unknown")
	assert.False(t, ok)
}

func TestAllLabelsForOneKey(t *testing.T) {
	classes := ncbi.DefaultClasses()
	labels := []string{
		"acronym", "in-part", "includes", "common name",
		"genbank common name", "blast name", "scientific name", "synonym",
		"type material", "genbank synonym", "authority", "genbank acronym",
		"equivalent name", "misnomer", "misspelling", "not a real class",
	}

	r := ncbi.NewRecord(42)
	for _, l := range labels {
		eff, _ := classes.Effect(l)
		r.ApplyName("name of "+l, eff)
	}

	assert.Equal(t, "name of scientific name", r.Name)
	assert.Equal(t, []string{
		"name of synonym",
		"name of equivalent name",
		"name of misnomer",
		"name of misspelling",
	}, r.Synonyms)
	assert.Equal(t, []string{
		"name of common name",
		"name of genbank common name",
	}, r.Vernacular)
	for _, s := range append(r.Synonyms, r.Vernacular...) {
		assert.NotEqual(t, "name of not a real class", s)
	}
}

func TestParseEffect(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   ncbi.Effect
		err   bool
	}{
		{"none", "none", ncbi.Effect{Kind: ncbi.None}, false},
		{"synonym", " Synonym ", ncbi.Effect{Kind: ncbi.Synonym}, false},
		{"vernacular", "vernacular", ncbi.Effect{Kind: ncbi.Vernacular}, false},
		{"primary", "primary", ncbi.Effect{Kind: ncbi.Primary, Priority: 1}, false},
		{"priority", "primary:5", ncbi.Effect{Kind: ncbi.Primary, Priority: 5}, false},
		{"zero priority", "primary:0", ncbi.Effect{}, true},
		{"bad priority", "primary:x", ncbi.Effect{}, true},
		{"unknown", "merge", ncbi.Effect{}, true},
	}

	for _, v := range tests {
		res, err := ncbi.ParseEffect(v.input)
		if v.err {
			assert.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestWithOverrides(t *testing.T) {
	classes := ncbi.DefaultClasses()

	res, err := classes.WithOverrides(map[string]string{
		"Authority": "synonym",
		"in-part":   "synonym",
	})
	require.NoError(t, err)

	eff, _ := res.Effect("authority")
	assert.Equal(t, ncbi.Synonym, eff.Kind)
	eff, _ = res.Effect("in-part")
	assert.Equal(t, ncbi.Synonym, eff.Kind)

	// original table is untouched
	eff, _ = classes.Effect("authority")
	assert.Equal(t, ncbi.Primary, eff.Kind)

	_, err = classes.WithOverrides(map[string]string{"authority": "bogus"})
	assert.Error(t, err)
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "primary:2", ncbi.Effect{Kind: ncbi.Primary, Priority: 2}.String())
	assert.Equal(t, "synonym", ncbi.Effect{Kind: ncbi.Synonym}.String())
	assert.Equal(t, "EffectKind(9)", ncbi.EffectKind(9).String())
}
