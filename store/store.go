// Package store persists named stream states between runs, so a stream
// can resume exactly where the previous process stopped.
package store

import (
	"encoding/binary"
	"github.com/fernandosanchezjr/detstream/utils"
	"go.etcd.io/bbolt"
	"path"
)

const DBPath = "db"

var streamsBucket = []byte("streams")

// DefaultPath returns the database location under the home folder.
func DefaultPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "streams.db")
}

type Store struct {
	db *bbolt.DB
}

func Open(dbPath string) (*Store, error) {
	var db, err = bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveState records the state a stream should resume from.
func (s *Store) SaveState(name string, state uint64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(streamsBucket)
		if err != nil {
			return err
		}
		var value [8]byte
		binary.BigEndian.PutUint64(value[:], state)
		return bucket.Put([]byte(name), value[:])
	})
}

// LoadState retrieves a saved stream state. The second return is false
// if the stream has never been saved.
func (s *Store) LoadState(name string) (uint64, bool, error) {
	var state uint64
	var found bool
	var err = s.db.View(func(tx *bbolt.Tx) error {
		var bucket = tx.Bucket(streamsBucket)
		if bucket == nil {
			return nil
		}
		var value = bucket.Get([]byte(name))
		if len(value) != 8 {
			return nil
		}
		state = binary.BigEndian.Uint64(value)
		found = true
		return nil
	})
	return state, found, err
}
