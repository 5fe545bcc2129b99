// Package iostore implements ncbi.Store on top of SQLite.
//
// Records are gob-encoded and kept in one table keyed by taxon id. A
// write-back cache keeps recently used records in memory; when it is full
// all cached records are written to disk in one transaction and the cache
// is emptied. That keeps memory bounded no matter how large the dump is.
package iostore

import (
	"database/sql"
	"errors"
	"iter"
	"log/slog"
	"sync"

	"github.com/gnames/gnfmt"
	"github.com/gnames/taxdump/pkg/ncbi"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS usages (
	key INTEGER PRIMARY KEY,
	data BLOB NOT NULL
)`

const upsert = `INSERT INTO usages(key, data) VALUES(?, ?)
	ON CONFLICT(key) DO UPDATE SET data = excluded.data`

// Store is a disk-backed ncbi.Store.
type Store struct {
	path      string
	db        *sql.DB
	cacheSize int
	cache     map[int]*ncbi.Record
	enc       gnfmt.GNgob
	mu        sync.Mutex
	closed    bool
}

// Open opens or creates the store file at path. cacheSize is the maximum
// number of records kept in memory between flushes.
func Open(path string, cacheSize int) (*Store, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	// One connection so that pragmas apply to every statement.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = OFF",
		"PRAGMA synchronous = OFF",
		schema,
	}
	for _, q := range pragmas {
		if _, err = db.Exec(q); err != nil {
			_ = db.Close()
			return nil, OpenError(path, err)
		}
	}

	res := &Store{
		path:      path,
		db:        db,
		cacheSize: cacheSize,
		cache:     make(map[int]*ncbi.Record, cacheSize),
	}
	slog.Info("Record store opened", "path", path, "cache_size", cacheSize)
	return res, nil
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// GetOrCreate returns a mutable handle to the record of the key, creating
// the record if needed. The handle is valid until the next store call.
func (s *Store) GetOrCreate(key int) (*ncbi.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ClosedError()
	}

	if r, ok := s.cache[key]; ok {
		return r, nil
	}

	r, err := s.load(key)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = ncbi.NewRecord(key)
	}

	if len(s.cache) >= s.cacheSize {
		if err = s.flush(); err != nil {
			return nil, err
		}
	}
	s.cache[key] = r
	return r, nil
}

// Get returns the record of the key, or nil if there is none. Changes to
// a record returned by Get are not guaranteed to be saved.
func (s *Store) Get(key int) (*ncbi.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ClosedError()
	}

	if r, ok := s.cache[key]; ok {
		return r, nil
	}
	return s.load(key)
}

// Keys returns keys of all records in unspecified order.
func (s *Store) Keys() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT key FROM usages")
	if err != nil {
		return nil, ReadError(s.path, err)
	}
	defer func() { _ = rows.Close() }()

	var res []int
	for rows.Next() {
		var key int
		if err = rows.Scan(&key); err != nil {
			return nil, ReadError(s.path, err)
		}
		res = append(res, key)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadError(s.path, err)
	}
	return res, nil
}

// Values iterates over all records in unspecified order. The store is
// locked during iteration, do not call other store methods from the loop.
func (s *Store) Values() iter.Seq2[*ncbi.Record, error] {
	return s.scan("SELECT data FROM usages")
}

// Sorted iterates over all records in ascending key order. Like Values,
// it keeps the store locked until the loop ends.
func (s *Store) Sorted() iter.Seq2[*ncbi.Record, error] {
	return s.scan("SELECT data FROM usages ORDER BY key")
}

func (s *Store) scan(query string) iter.Seq2[*ncbi.Record, error] {
	return func(yield func(*ncbi.Record, error) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.ready(); err != nil {
			yield(nil, err)
			return
		}

		rows, err := s.db.Query(query)
		if err != nil {
			yield(nil, ReadError(s.path, err))
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var data []byte
			if err = rows.Scan(&data); err != nil {
				yield(nil, ReadError(s.path, err))
				return
			}
			r, err := s.decode(data)
			if !yield(r, err) || err != nil {
				return
			}
		}
		if err = rows.Err(); err != nil {
			yield(nil, ReadError(s.path, err))
		}
	}
}

// Len returns the number of records.
func (s *Store) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return 0, err
	}

	var res int
	err := s.db.QueryRow("SELECT COUNT(*) FROM usages").Scan(&res)
	if err != nil {
		return 0, ReadError(s.path, err)
	}
	return res, nil
}

// Flush writes all cached records to disk.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ClosedError()
	}
	return s.flush()
}

// Close flushes the cache and closes the database. Calling Close on a
// closed store does nothing.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	flushErr := s.flush()
	closeErr := s.db.Close()
	s.closed = true
	if err := errors.Join(flushErr, closeErr); err != nil {
		return WriteError(s.path, err)
	}
	slog.Info("Record store closed", "path", s.path)
	return nil
}

// ready flushes the cache so that queries see every record.
func (s *Store) ready() error {
	if s.closed {
		return ClosedError()
	}
	return s.flush()
}

func (s *Store) load(key int) (*ncbi.Record, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM usages WHERE key = ?", key).
		Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, ReadError(s.path, err)
	}
	return s.decode(data)
}

// stored is the persisted form of a record. Gob drops zero values even
// behind a pointer, so a parent key of 0 needs its own presence flag.
type stored struct {
	Record    ncbi.Record
	HasParent bool
	Parent    int
}

func (s *Store) encode(r *ncbi.Record) ([]byte, error) {
	st := stored{Record: *r}
	if r.ParentKey != nil {
		st.HasParent = true
		st.Parent = *r.ParentKey
		st.Record.ParentKey = nil
	}
	return s.enc.Encode(st)
}

func (s *Store) decode(data []byte) (*ncbi.Record, error) {
	var st stored
	if err := s.enc.Decode(data, &st); err != nil {
		return nil, DecodeError(err)
	}
	r := st.Record
	if st.HasParent {
		parent := st.Parent
		r.ParentKey = &parent
	}
	return &r, nil
}

func (s *Store) flush() (retErr error) {
	if len(s.cache) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return WriteError(s.path, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(upsert)
	if err != nil {
		return WriteError(s.path, err)
	}
	defer func() { _ = stmt.Close() }()

	for key, r := range s.cache {
		data, err := s.encode(r)
		if err != nil {
			return WriteError(s.path, err)
		}
		if _, err = stmt.Exec(key, data); err != nil {
			return WriteError(s.path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return WriteError(s.path, err)
	}
	slog.Debug("Flushed record cache", "records", len(s.cache))
	clear(s.cache)
	return nil
}
