// Package store persists self-play training records and aggregate game
// statistics in BadgerDB, adapting the teacher's user-preferences store
// to the training-data pipeline named in the expanded interface list
// (training-data generation tooling is otherwise out of scope per
// spec §1/§6, but the records it would consume still need somewhere to
// live between self-play and export).
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/blokuscore/engine/internal/record"
)

const (
	recordPrefix = "rec/"
	keyStats     = "stats"
	keySequence  = "seq"
)

// Store wraps a Badger database holding packed training records under
// sequential keys and a single JSON-encoded Stats document.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a Badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats aggregates self-play outcomes across games, mirroring the shape
// of the teacher's GameStats but keyed on engine-vs-engine self-play
// rather than human-vs-computer sessions.
type Stats struct {
	GamesPlayed int            `json:"games_played"`
	AWins       int            `json:"a_wins"`
	BWins       int            `json:"b_wins"`
	Draws       int            `json:"draws"`
	RecordCount int            `json:"record_count"`
	ByStartPos  map[string]int `json:"by_start_pos"`
}

// NewStats returns an empty Stats.
func NewStats() *Stats {
	return &Stats{ByStartPos: make(map[string]int)}
}

// nextSequence allocates a strictly increasing counter used to key
// records in append order.
func (s *Store) nextSequence(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(keySequence))
	var next uint64
	switch {
	case err == badger.ErrKeyNotFound:
		next = 0
	case err != nil:
		return 0, err
	default:
		err = item.Value(func(val []byte) error {
			next = binary.LittleEndian.Uint64(val) + 1
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, next)
	if err := txn.Set([]byte(keySequence), buf); err != nil {
		return 0, err
	}
	return next, nil
}

// PutRecord appends rec under the next sequence key.
func (s *Store) PutRecord(rec record.Record) error {
	return s.db.Update(func(txn *badger.Txn) error {
		seq, err := s.nextSequence(txn)
		if err != nil {
			return err
		}
		key := recordKey(seq)
		encoded := record.Encode(rec)
		return txn.Set(key, encoded[:])
	})
}

// PutRecords appends every record in one transaction.
func (s *Store) PutRecords(recs []record.Record) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, rec := range recs {
			seq, err := s.nextSequence(txn)
			if err != nil {
				return err
			}
			encoded := record.Encode(rec)
			if err := txn.Set(recordKey(seq), encoded[:]); err != nil {
				return err
			}
		}
		return nil
	})
}

// EachRecord calls fn for every stored record in key order, stopping on
// the first error fn returns.
func (s *Store) EachRecord(fn func(record.Record) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(recordPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(recordPrefix)); it.ValidForPrefix([]byte(recordPrefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				rec, err := record.Decode(val)
				if err != nil {
					return err
				}
				return fn(rec)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadStats loads aggregate stats, or an empty Stats if none are stored.
func (s *Store) LoadStats() (*Stats, error) {
	stats := NewStats()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

// SaveStats persists stats.
func (s *Store) SaveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

func recordKey(seq uint64) []byte {
	key := make([]byte, len(recordPrefix)+8)
	copy(key, recordPrefix)
	binary.BigEndian.PutUint64(key[len(recordPrefix):], seq)
	return key
}
