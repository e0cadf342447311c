package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// BoltBucket holds every storefront key.
var BoltBucket = []byte("sr-shopping")

type BoltStoreImpl struct {
	db *bolt.DB
}

// CreateNewBoltStore makes sure the bucket exists before returning.
func CreateNewBoltStore(db *bolt.DB) (*BoltStoreImpl, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(BoltBucket)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &BoltStoreImpl{db: db}, nil
}

func (r *BoltStoreImpl) Get(ctx context.Context, key string) (value []byte, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(BoltBucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			// bolt values are only valid inside the transaction
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "BoltGet").Msg("")
	}

	return value, err
}

func (r *BoltStoreImpl) Set(ctx context.Context, key string, value []byte) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(BoltBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "BoltSet").Msg("")
	}

	return err
}

func (r *BoltStoreImpl) Close(ctx context.Context) error {
	return r.db.Close()
}
