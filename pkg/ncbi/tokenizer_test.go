package ncbi_test

import (
	"testing"

	"github.com/gnames/taxdump/pkg/ncbi"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		msg  string
		line string
		res  ncbi.Row
	}{
		{
			msg:  "name row",
			line: "9606\t|\tHomo sapiens\t|\t\t|\tscientific name\t|",
			res:  ncbi.Row{"9606", "Homo sapiens", "", "scientific name", ""},
		},
		{
			msg:  "no whitespace",
			line: "1|2|3",
			res:  ncbi.Row{"1", "2", "3"},
		},
		{
			msg:  "extra spaces",
			line: "  1   |  a b  |c  ",
			res:  ncbi.Row{"1", "a b", "c"},
		},
		{
			msg:  "empty fields",
			line: "1| |",
			res:  ncbi.Row{"1", "", ""},
		},
		{
			msg:  "empty line",
			line: "",
			res:  nil,
		},
		{
			msg:  "blank line",
			line: " \t ",
			res:  nil,
		},
	}

	for _, v := range tests {
		res := ncbi.Tokenize(v.line)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestRowField(t *testing.T) {
	assert := assert.New(t)
	row := ncbi.Tokenize("9606 | 9605 | species")

	assert.Equal("9606", row.Field(0))
	assert.Equal("species", row.Field(2))
	assert.Equal("", row.Field(3))
	assert.Equal("", row.Field(12))
	assert.Equal("", row.Field(-1))
	assert.True(row.Has(2))
	assert.False(row.Has(3))
	assert.Equal("9606 | 9605 | species", row.String())
}
