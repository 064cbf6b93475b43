package mongostore

import (
	"context"
	"regexp"

	"docuvault/models"
	"docuvault/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fileStore MongoStore

func (s *fileStore) MaxID(ctx context.Context) (int64, error) {
	var file models.File
	err := s.files.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})).Decode(&file)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, mapErr(err)
	}
	return file.ID, nil
}

func (s *fileStore) Insert(ctx context.Context, file *models.File) error {
	_, err := s.files.InsertOne(ctx, file)
	return mapErr(err)
}

func (s *fileStore) FindByID(ctx context.Context, id int64) (*models.File, error) {
	var file models.File
	err := s.files.FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if err != nil {
		return nil, mapErr(err)
	}
	return &file, nil
}

func (s *fileStore) ListByFolder(ctx context.Context, folderID int64) ([]models.File, error) {
	return s.list(ctx, bson.M{"folder_id": folderID},
		options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
}

func (s *fileStore) ListByCategory(ctx context.Context, folderID int64, category string) ([]models.File, error) {
	return s.list(ctx, bson.M{"folder_id": folderID, "category": category},
		options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
}

func (s *fileStore) ListByNamePrefix(ctx context.Context, folderID int64, prefix string) ([]models.File, error) {
	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}
	return s.list(ctx, bson.M{"folder_id": folderID, "name": pattern}, nil)
}

func (s *fileStore) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.File, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.files.Find(ctx, filter, opts)
	} else {
		cursor, err = s.files.Find(ctx, filter)
	}
	if err != nil {
		return nil, mapErr(err)
	}
	defer cursor.Close(ctx)

	var files []models.File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, mapErr(err)
	}
	return files, nil
}

func (s *fileStore) CountByFolder(ctx context.Context, folderID int64) (int64, error) {
	n, err := s.files.CountDocuments(ctx, bson.M{"folder_id": folderID})
	return n, mapErr(err)
}

func (s *fileStore) Delete(ctx context.Context, id int64) error {
	res, err := s.files.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *fileStore) ResetClassification(ctx context.Context, ids []int64) error {
	_, err := s.files.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{
			"$set":   bson.M{"classification_state": models.ClassificationUnclassified},
			"$unset": bson.M{"category": ""},
		})
	return mapErr(err)
}

func (s *fileStore) ReassignCategory(ctx context.Context, folderID int64, oldName, newName string) error {
	_, err := s.files.UpdateMany(ctx,
		bson.M{"folder_id": folderID, "category": oldName},
		bson.M{"$set": bson.M{"category": newName}})
	return mapErr(err)
}

func (s *fileStore) ClearCategory(ctx context.Context, folderID int64, category string) error {
	_, err := s.files.UpdateMany(ctx,
		bson.M{"folder_id": folderID, "category": category},
		bson.M{"$unset": bson.M{"category": ""}})
	return mapErr(err)
}
