package models

import (
	"time"
)

type Folder struct {
	ID      int64  `bson:"_id" json:"folder_id"`
	OwnerID int64  `bson:"owner_id" json:"user_id"`
	Name    string `bson:"name" json:"folder_name"`

	// FileCount is a cache over the files collection, recomputed by
	// FolderService.Sync after every membership change.
	FileCount int64 `bson:"file_count" json:"file_count"`

	// ClassifiedSinceChange is set when the folder is submitted for
	// classification and cleared whenever membership changes afterwards.
	ClassifiedSinceChange bool `bson:"classified_since_change" json:"classified_since_change"`

	LastActivity *time.Time `bson:"last_activity,omitempty" json:"last_activity,omitempty"`
}
