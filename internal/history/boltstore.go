package history

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const historyBucket = "command-history"

// BoltStore is an IO implementation backed by a bbolt bucket. Entries
// are keyed by an incrementing sequence so Read returns them in
// insertion order.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) the history database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("history: opening store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(historyBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("history: creating bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Append writes one line to the store.
func (s *BoltStore) Append(input string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var k [8]byte
		binary.BigEndian.PutUint64(k[:], seq)
		return b.Put(k[:], []byte(input))
	})
}

// Read returns all stored lines, oldest first.
func (s *BoltStore) Read() ([]string, error) {
	var items []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))
		return b.ForEach(func(_, v []byte) error {
			items = append(items, string(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Close releases the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
