// Package ncbi contains the pure part of the NCBI taxonomy dump
// aggregation: the aggregate taxon record, the row tokenizer, the name
// classification table, the type catalog and the record store contract.
//
// Nothing in this package touches the file system or the network. I/O
// lives in internal/io* packages.
package ncbi

import (
	"iter"
)

// Names of dump files inside new_taxdump.zip. Members are matched by exact
// case-insensitive name.
const (
	NodesFile        = "nodes.dmp"
	NamesFile        = "names.dmp"
	TypeMaterialFile = "typematerial.dmp"
	CitationsFile    = "citations.dmp"
	// HostFile is accepted but not merged.
	HostFile = "host.dmp"
)

// Store maps taxon keys to aggregate records.
//
// A handle returned by GetOrCreate stays valid until the next call to the
// store. Callers finish mutating one record before they request another
// one, the store persists the mutation on its own.
type Store interface {
	// GetOrCreate returns the record for the key, creating an empty
	// record with the key set if the key was never seen before.
	GetOrCreate(key int) (*Record, error)

	// Get returns the record for the key or nil if it does not exist.
	Get(key int) (*Record, error)

	// Keys returns all keys of the store. The order is unspecified.
	Keys() ([]int, error)

	// Values iterates over all records. The order is unspecified.
	Values() iter.Seq2[*Record, error]

	// Sorted iterates over all records in ascending key order.
	Sorted() iter.Seq2[*Record, error]

	// Len returns the number of records.
	Len() (int, error)

	// Close flushes pending changes and releases resources.
	Close() error
}
