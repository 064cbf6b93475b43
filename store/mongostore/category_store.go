package mongostore

import (
	"context"

	"docuvault/models"
	"docuvault/store"

	"go.mongodb.org/mongo-driver/bson"
)

type categoryStore MongoStore

func (s *categoryStore) Create(ctx context.Context, category *models.Category) error {
	_, err := s.categories.InsertOne(ctx, category)
	return mapErr(err)
}

func (s *categoryStore) Find(ctx context.Context, folderID int64, name string) (*models.Category, error) {
	var category models.Category
	err := s.categories.FindOne(ctx, bson.M{"folder_id": folderID, "category_name": name}).Decode(&category)
	if err != nil {
		return nil, mapErr(err)
	}
	return &category, nil
}

func (s *categoryStore) ListByFolder(ctx context.Context, folderID int64) ([]models.Category, error) {
	cursor, err := s.categories.Find(ctx, bson.M{"folder_id": folderID})
	if err != nil {
		return nil, mapErr(err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, mapErr(err)
	}
	return categories, nil
}

func (s *categoryStore) Rename(ctx context.Context, folderID int64, oldName, newName string) error {
	res, err := s.categories.UpdateOne(ctx,
		bson.M{"folder_id": folderID, "category_name": oldName},
		bson.M{"$set": bson.M{"category_name": newName}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *categoryStore) Delete(ctx context.Context, folderID int64, name string) error {
	res, err := s.categories.DeleteOne(ctx, bson.M{"folder_id": folderID, "category_name": name})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
