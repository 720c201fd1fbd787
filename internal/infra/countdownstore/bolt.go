package countdownstore

import (
	"encoding/json"
	"time"

	"petstay-bff/internal/domain/countdown"
	"petstay-bff/internal/pkg/errs"

	bolt "github.com/boltdb/bolt"
)

const bucketName = "order_countdowns"

// BoltPersister keeps countdowns in an embedded BoltDB file, one JSON value
// per orderId. A single local file is all the durability this service needs.
type BoltPersister struct {
	db *bolt.DB
}

// NewBoltPersister opens (or creates) the database file and ensures the
// countdown bucket exists.
func NewBoltPersister(path string) (*BoltPersister, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, errs.Wrap(err, "failed to open countdown database")
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errs.Wrap(err, "failed to create countdown bucket")
	}

	return &BoltPersister{db: db}, nil
}

func (p *BoltPersister) Load() (map[string]countdown.Entry, error) {
	entries := make(map[string]countdown.Entry)

	err := p.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		return b.ForEach(func(k, v []byte) error {
			var entry countdown.Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries[string(k)] = entry
			return nil
		})
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to load persisted countdowns")
	}

	return entries, nil
}

func (p *BoltPersister) Put(entry countdown.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errs.Wrap(err, "failed to encode countdown entry")
	}
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(entry.OrderID), data)
	})
}

func (p *BoltPersister) Delete(orderID string) error {
	// Deleting a missing key is a no-op in bolt, which is the behavior we
	// want: Clear is safe to repeat.
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(orderID))
	})
}

func (p *BoltPersister) DeleteAll() error {
	return p.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketName))
		return err
	})
}

func (p *BoltPersister) Close() error {
	return p.db.Close()
}
