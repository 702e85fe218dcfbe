package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
)

// MongoStore keeps each document under its identifier as _id.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (model.Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	delete(raw, "_id")
	return model.Document(raw), nil
}

func (s *MongoStore) Set(ctx context.Context, collection, id string, doc model.Document) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, bson.M(doc), opts)
	return err
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields model.Document) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStore) FindByField(ctx context.Context, collection, field string, value any, orderDesc string) ([]Snapshot, error) {
	opts := options.Find()
	if orderDesc != "" {
		opts.SetSort(bson.D{{Key: orderDesc, Value: -1}})
	}
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{field: value}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []Snapshot
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		id, _ := raw["_id"].(string)
		delete(raw, "_id")
		snapshots = append(snapshots, Snapshot{ID: id, Data: model.Document(raw)})
	}
	return snapshots, cursor.Err()
}
