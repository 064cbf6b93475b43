package models

// Category is a label scoped to a single folder. The (FolderID, Name)
// pair is its identity; the store enforces uniqueness.
type Category struct {
	FolderID int64  `bson:"folder_id" json:"folder_id"`
	Name     string `bson:"category_name" json:"category_name"`
}
