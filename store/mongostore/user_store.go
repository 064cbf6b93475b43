package mongostore

import (
	"context"

	"docuvault/models"
	"docuvault/store"

	"go.mongodb.org/mongo-driver/bson"
)

type userStore MongoStore

func (s *userStore) NextID(ctx context.Context) (int64, error) {
	return (*MongoStore)(s).nextSequence(ctx, "user_id")
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	_, err := s.users.InsertOne(ctx, user)
	return mapErr(err)
}

func (s *userStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *userStore) FindByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"login_id": loginID}).Decode(&user)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *userStore) UpdateAccessToken(ctx context.Context, id int64, token string) error {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"access_token": token}})
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *userStore) Delete(ctx context.Context, id int64) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapErr(err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}

	// Cascade: folders, their categories, then files.
	cursor, err := s.folders.Find(ctx, bson.M{"owner_id": id})
	if err != nil {
		return mapErr(err)
	}
	var folders []models.Folder
	if err := cursor.All(ctx, &folders); err != nil {
		return mapErr(err)
	}
	for _, f := range folders {
		if _, err := s.categories.DeleteMany(ctx, bson.M{"folder_id": f.ID}); err != nil {
			return mapErr(err)
		}
	}
	if _, err := s.folders.DeleteMany(ctx, bson.M{"owner_id": id}); err != nil {
		return mapErr(err)
	}
	_, err = s.files.DeleteMany(ctx, bson.M{"owner_id": id})
	return mapErr(err)
}
