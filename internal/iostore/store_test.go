package iostore

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxdump/pkg/errcode"
	"github.com/gnames/taxdump/pkg/ncbi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ncbi.Store = (*Store)(nil)

func openTemp(t *testing.T, cacheSize int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.sqlite")
	s, err := Open(path, cacheSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetOrCreate(t *testing.T) {
	s := openTemp(t, 10)

	r, err := s.GetOrCreate(9606)
	require.NoError(t, err)
	assert.Equal(t, 9606, r.Key)
	assert.Nil(t, r.ParentKey)
	assert.Empty(t, r.Name)
	r.Name = "Homo sapiens"

	r2, err := s.GetOrCreate(9606)
	require.NoError(t, err)
	assert.Equal(t, "Homo sapiens", r2.Name)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestGetOrCreate_Flush verifies that mutations survive cache flushes.
func TestGetOrCreate_Flush(t *testing.T) {
	s := openTemp(t, 2)

	for i := 1; i <= 7; i++ {
		r, err := s.GetOrCreate(i)
		require.NoError(t, err)
		r.Synonyms = append(r.Synonyms, "first")
	}
	for i := 1; i <= 7; i++ {
		r, err := s.GetOrCreate(i)
		require.NoError(t, err)
		r.Synonyms = append(r.Synonyms, "second")
	}

	for i := 1; i <= 7; i++ {
		r, err := s.Get(i)
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, []string{"first", "second"}, r.Synonyms, i)
	}
	assert.LessOrEqual(t, len(s.cache), 2)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestGet_Missing(t *testing.T) {
	s := openTemp(t, 2)
	r, err := s.Get(1)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestKeysValues(t *testing.T) {
	s := openTemp(t, 3)
	keys := []int{50, 3, 1000, 7, 1, 42}
	parent := 1
	for _, k := range keys {
		r, err := s.GetOrCreate(k)
		require.NoError(t, err)
		r.ParentKey = &parent
		r.Citations = append(r.Citations, ncbi.Citation{PubmedID: "1"})
	}

	res, err := s.Keys()
	require.NoError(t, err)
	slices.Sort(res)
	exp := slices.Clone(keys)
	slices.Sort(exp)
	assert.Equal(t, exp, res)

	var seen []int
	for r, err := range s.Values() {
		require.NoError(t, err)
		require.NotNil(t, r.ParentKey)
		assert.Equal(t, 1, *r.ParentKey)
		assert.Len(t, r.Citations, 1)
		seen = append(seen, r.Key)
	}
	slices.Sort(seen)
	assert.Equal(t, exp, seen)
}

// TestGetOrCreate_ZeroParent checks that a parent key of 0 is not lost
// when the record goes through the disk.
func TestGetOrCreate_ZeroParent(t *testing.T) {
	for _, cacheSize := range []int{1, 100} {
		s := openTemp(t, cacheSize)
		r, err := s.GetOrCreate(5)
		require.NoError(t, err)
		parent := 0
		r.ParentKey = &parent
		r.Rank = "genus"
		_, err = s.GetOrCreate(6)
		require.NoError(t, err)

		keys, err := s.Keys()
		require.NoError(t, err)
		assert.Len(t, keys, 2)

		r, err = s.Get(5)
		require.NoError(t, err)
		require.NotNil(t, r)
		require.NotNil(t, r.ParentKey, cacheSize)
		assert.Equal(t, 0, *r.ParentKey)
		assert.True(t, r.HasNode())
		assert.Equal(t, "genus", r.Rank)

		r, err = s.Get(6)
		require.NoError(t, err)
		assert.Nil(t, r.ParentKey)
		assert.False(t, r.HasNode())
	}
}

func TestSorted(t *testing.T) {
	s := openTemp(t, 2)
	for _, k := range []int{50, 3, 1000, 0, 7, 1, 42} {
		_, err := s.GetOrCreate(k)
		require.NoError(t, err)
	}

	var seen []int
	for r, err := range s.Sorted() {
		require.NoError(t, err)
		seen = append(seen, r.Key)
	}
	assert.Equal(t, []int{0, 1, 3, 7, 42, 50, 1000}, seen)

	// stopping early releases the store
	for range s.Sorted() {
		break
	}
	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.sqlite")
	s, err := Open(path, 100)
	require.NoError(t, err)

	r, err := s.GetOrCreate(2)
	require.NoError(t, err)
	r.Rank = "superkingdom"
	r.TypeMaterial = []ncbi.TypeMaterial{{Citation: "ATCC 1", Status: "type strain"}}
	require.NoError(t, s.Close())
	// second close is a no-op
	require.NoError(t, s.Close())

	s, err = Open(path, 100)
	require.NoError(t, err)
	defer s.Close()

	r, err = s.Get(2)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "superkingdom", r.Rank)
	assert.Equal(t, "type strain", r.TypeMaterial[0].Status)
	assert.Nil(t, r.ParentKey)
}

func TestClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.sqlite")
	s, err := Open(path, 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.GetOrCreate(1)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.StoreClosedError, gnErr.Code)

	_, err = s.Keys()
	assert.Error(t, err)
	_, err = s.Len()
	assert.Error(t, err)
	for _, err := range s.Values() {
		assert.Error(t, err)
	}
	for _, err := range s.Sorted() {
		assert.Error(t, err)
	}
}

func TestOpen_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "store.sqlite")
	_, err := Open(path, 1)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.StoreOpenError, gnErr.Code)
	assert.Equal(t, path, gnErr.Vars[0])
}
