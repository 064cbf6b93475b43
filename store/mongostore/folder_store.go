package mongostore

import (
	"context"
	"time"

	"docuvault/models"
	"docuvault/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type folderStore MongoStore

func (s *folderStore) NextID(ctx context.Context) (int64, error) {
	return (*MongoStore)(s).nextSequence(ctx, "folder_id")
}

func (s *folderStore) Create(ctx context.Context, folder *models.Folder) error {
	_, err := s.folders.InsertOne(ctx, folder)
	return mapErr(err)
}

func (s *folderStore) FindByID(ctx context.Context, id int64) (*models.Folder, error) {
	var folder models.Folder
	err := s.folders.FindOne(ctx, bson.M{"_id": id}).Decode(&folder)
	if err != nil {
		return nil, mapErr(err)
	}
	return &folder, nil
}

func (s *folderStore) FindByOwner(ctx context.Context, ownerID, folderID int64) (*models.Folder, error) {
	var folder models.Folder
	err := s.folders.FindOne(ctx, bson.M{"_id": folderID, "owner_id": ownerID}).Decode(&folder)
	if err != nil {
		return nil, mapErr(err)
	}
	return &folder, nil
}

func (s *folderStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	// Descending sort places missing timestamps after populated ones,
	// which is exactly the nulls-last ordering the listing wants.
	cursor, err := s.folders.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "last_activity", Value: -1}}))
	if err != nil {
		return nil, mapErr(err)
	}
	defer cursor.Close(ctx)

	var folders []models.Folder
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, mapErr(err)
	}
	return folders, nil
}

func (s *folderStore) Rename(ctx context.Context, id int64, name string) error {
	res, err := s.folders.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *folderStore) Delete(ctx context.Context, id int64) error {
	res, err := s.folders.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	if _, err := s.files.DeleteMany(ctx, bson.M{"folder_id": id}); err != nil {
		return mapErr(err)
	}
	_, err = s.categories.DeleteMany(ctx, bson.M{"folder_id": id})
	return mapErr(err)
}

func (s *folderStore) SetAggregates(ctx context.Context, id int64, fileCount int64, lastActivity time.Time, classifiedSinceChange bool) error {
	res, err := s.folders.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"file_count":              fileCount,
		"last_activity":           lastActivity,
		"classified_since_change": classifiedSinceChange,
	}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
