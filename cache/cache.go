// Package cache stores the last known category of each way, so that
// change files can be compared against a previous classification.
package cache

import (
	bin "encoding/binary"
	"os"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/infrastructure"
	"github.com/radsim/roadstyle/log"
)

var (
	NotFound = errors.New("not found")
)

type Entry struct {
	ID       int64
	Category infrastructure.Detailed
}

// CategoryCache maps way IDs to detailed categories. It is safe for
// concurrent use.
type CategoryCache struct {
	dir string
	db  *badger.DB
}

// Open opens or creates the cache in dir.
func Open(dir string) (*CategoryCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating cache dir %s", dir)
	}
	opts := badger.DefaultOptions
	opts.Dir = dir
	opts.ValueDir = dir
	opts.Logger = badgerLogger{}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cache %s", dir)
	}
	return &CategoryCache{dir: dir, db: db}, nil
}

func (c *CategoryCache) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Remove closes and deletes the cache.
func (c *CategoryCache) Remove() error {
	if err := c.Close(); err != nil {
		return err
	}
	return os.RemoveAll(c.dir)
}

func (c *CategoryCache) Put(id int64, category infrastructure.Detailed) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(idToKeyBuf(id), []byte(category))
	})
}

// PutEntries stores all entries in a single transaction.
func (c *CategoryCache) PutEntries(entries []Entry) error {
	return c.db.Update(func(txn *badger.Txn) error {
		for _, e := range entries {
			if err := txn.Set(idToKeyBuf(e.ID), []byte(e.Category)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get returns the category of way id, or NotFound.
func (c *CategoryCache) Get(id int64) (infrastructure.Detailed, error) {
	var category infrastructure.Detailed
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(idToKeyBuf(id))
		if err == badger.ErrKeyNotFound {
			return NotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			// val is only valid inside this func
			category = infrastructure.Detailed(string(val))
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	return category, nil
}

// Delete removes way id. Deleting a missing way is not an error.
func (c *CategoryCache) Delete(id int64) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(idToKeyBuf(id))
	})
}

// Iter calls fn for all entries in ID order.
func (c *CategoryCache) Iter(fn func(Entry) error) error {
	return c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			e := Entry{ID: idFromKeyBuf(item.Key())}
			err := item.Value(func(val []byte) error {
				e.Category = infrastructure.Detailed(string(val))
				return nil
			})
			if err != nil {
				return err
			}
			if err := fn(e); err != nil {
				return err
			}
		}
		return nil
	})
}

// signBit is flipped in keys, so that negative IDs sort before positive
// IDs.
const signBit = 1 << 63

func idToKeyBuf(id int64) []byte {
	b := make([]byte, 8)
	bin.BigEndian.PutUint64(b, uint64(id)^signBit)
	return b[:8]
}

func idFromKeyBuf(buf []byte) int64 {
	return int64(bin.BigEndian.Uint64(buf) ^ signBit)
}

// badgerLogger sends badger messages to our log with matching levels.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[error] cache: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	log.Printf("[warn] cache: "+format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	log.Printf("[debug] cache: "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	log.Printf("[debug] cache: "+format, args...)
}
