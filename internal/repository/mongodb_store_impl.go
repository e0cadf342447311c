package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const kvCollection = "kv"

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type MongoDBStoreImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBStore(db *mongo.Database) *MongoDBStoreImpl {
	return &MongoDBStoreImpl{db: db}
}

func (r *MongoDBStoreImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument

	filter := bson.D{{Key: "_id", Value: key}}
	err := r.db.Collection(kvCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "MongoDBGet").Msg("")
		return nil, err
	}

	return []byte(doc.Value), nil
}

func (r *MongoDBStoreImpl) Set(ctx context.Context, key string, value []byte) error {
	filter := bson.D{{Key: "_id", Value: key}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "value", Value: string(value)}}}}
	opts := options.Update().SetUpsert(true)

	_, err := r.db.Collection(kvCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MongoDBSet").Msg("")
	}

	return err
}

func (r *MongoDBStoreImpl) Close(ctx context.Context) error {
	return r.db.Client().Disconnect(ctx)
}
