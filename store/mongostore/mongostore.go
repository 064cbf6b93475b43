// Package mongostore implements the store interfaces on MongoDB.
package mongostore

import (
	"context"
	"errors"

	"docuvault/models"
	"docuvault/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	db         *mongo.Database
	users      *mongo.Collection
	folders    *mongo.Collection
	files      *mongo.Collection
	categories *mongo.Collection
	counters   *mongo.Collection
}

// New wires the collections and returns the store bundle.
func New(db *mongo.Database) (*MongoStore, *store.Store) {
	m := &MongoStore{
		db:         db,
		users:      db.Collection("users"),
		folders:    db.Collection("folders"),
		files:      db.Collection("files"),
		categories: db.Collection("categories"),
		counters:   db.Collection("counters"),
	}
	return m, &store.Store{
		Users:      (*userStore)(m),
		Folders:    (*folderStore)(m),
		Files:      (*fileStore)(m),
		Categories: (*categoryStore)(m),
	}
}

// EnsureIndexes creates the unique indexes the ingestion core relies on
// for conflict detection: file display names per folder, folder names
// per owner, category names per folder, login ids and emails.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := m.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "login_id", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	if err != nil {
		return err
	}

	_, err = m.folders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "name", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "last_activity", Value: -1}}},
	})
	if err != nil {
		return err
	}

	// Display names are unique per folder among supported records only;
	// unsupported uploads keep their raw name and may repeat.
	supportedNames := options.Index().SetUnique(true).
		SetPartialFilterExpression(bson.M{"type": bson.M{"$ne": models.TypeUnsupported}})
	_, err = m.files.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "folder_id", Value: 1}, {Key: "name", Value: 1}}, Options: supportedNames},
		{Keys: bson.D{{Key: "folder_id", Value: 1}, {Key: "uploaded_at", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = m.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "folder_id", Value: 1}, {Key: "category_name", Value: 1}},
		Options: unique,
	})
	return err
}

// nextSequence increments and returns the named counter. Users and
// folders draw ids here; file ids come from FileStore.MaxID so that
// allocation matches the documented max+1 contract.
func (m *MongoStore) nextSequence(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// mapErr translates driver errors into the store sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}
