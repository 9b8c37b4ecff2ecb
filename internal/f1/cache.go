package f1

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

var cacheBucket = []byte("responses")

// Cache stores raw API responses on disk so a session is only ever fetched
// once. It is an optimization: every failure degrades to a refetch.
type Cache struct {
	db   *bolt.DB
	path string
}

func OpenCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0644, nil)

	if err != nil {
		return nil, errors.Wrapf(err, "could not open cache at %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cacheBucket)

		return err
	})

	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "could not initialise cache bucket")
	}

	cache := &Cache{db: db, path: path}

	if stat, err := os.Stat(path); err == nil {
		logrus.Debugf("Opened response cache at %s (%s)", path, humanize.Bytes(uint64(stat.Size())))
	}

	return cache, nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	var data []byte

	err := c.db.View(func(tx *bolt.Tx) error {
		if stored := tx.Bucket(cacheBucket).Get([]byte(key)); stored != nil {
			data = make([]byte, len(stored))
			copy(data, stored)
		}

		return nil
	})

	if err != nil {
		logrus.WithError(err).Warnf("Could not read cache entry %s, refetching", key)

		return nil, false
	}

	return data, data != nil
}

func (c *Cache) Put(key string, data []byte) {
	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cacheBucket).Put([]byte(key), data)
	})

	if err != nil {
		logrus.WithError(err).Warnf("Could not store cache entry %s", key)
	}
}

func (c *Cache) Close() error {
	return c.db.Close()
}
