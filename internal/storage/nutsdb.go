package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/nutsdb/nutsdb"
)

const bucketSlots = "tabdo"

// NutsDB keeps every slot in one BTree bucket of a nutsdb directory.
type NutsDB struct {
	db *nutsdb.DB
}

// OpenNutsDB opens (or creates) a nutsdb store in dir.
func OpenNutsDB(dir string) (*NutsDB, error) {
	if dir == "" {
		return nil, errors.New("nutsdb dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	opts := nutsdb.DefaultOptions
	opts.Dir = dir
	opts.SegmentSize = 8 << 20
	db, err := nutsdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open nutsdb: %w", err)
	}

	if err := db.Update(func(tx *nutsdb.Tx) error {
		return tx.NewBucket(nutsdb.DataStructureBTree, bucketSlots)
	}); err != nil && !errors.Is(err, nutsdb.ErrBucketAlreadyExist) {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &NutsDB{db: db}, nil
}

func (s *NutsDB) Get(key string) (string, bool, error) {
	var value []byte
	err := s.db.View(func(tx *nutsdb.Tx) error {
		v, err := tx.Get(bucketSlots, []byte(key))
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if isMissing(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

// Put stores value without a TTL.
func (s *NutsDB) Put(key, value string) error {
	return s.db.Update(func(tx *nutsdb.Tx) error {
		return tx.Put(bucketSlots, []byte(key), []byte(value), nutsdb.Persistent)
	})
}

func (s *NutsDB) Close() error {
	return s.db.Close()
}

// A bucket with no entries yet has no index, so both errors mean "absent".
func isMissing(err error) bool {
	return errors.Is(err, nutsdb.ErrKeyNotFound) || errors.Is(err, nutsdb.ErrNotFoundBucket)
}
