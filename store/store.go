package store

import (
	"context"
	"errors"
	"time"

	"docuvault/models"
)

// Sentinel errors returned by every store implementation so services can
// react to database conditions without knowing the backend.
var (
	ErrNotFound  = errors.New("requested item not found")
	ErrDuplicate = errors.New("item already exists")
)

// UserStore persists users. Create returns ErrDuplicate when the login
// id or email is already taken.
type UserStore interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByLoginID(ctx context.Context, loginID string) (*models.User, error)
	UpdateAccessToken(ctx context.Context, id int64, token string) error
	// Delete removes the user and cascades to owned folders, files and
	// categories. File bytes on disk are the service layer's problem.
	Delete(ctx context.Context, id int64) error
}

// FolderStore persists folders. Create returns ErrDuplicate when the
// owner already has a folder with the same name.
type FolderStore interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, folder *models.Folder) error
	FindByID(ctx context.Context, id int64) (*models.Folder, error)
	// FindByOwner scopes the lookup to a single user; a folder owned by
	// someone else reads as ErrNotFound.
	FindByOwner(ctx context.Context, ownerID, folderID int64) (*models.Folder, error)
	// ListByOwner returns folders ordered by last activity, newest
	// first, folders that never saw activity last.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error)
	Rename(ctx context.Context, id int64, name string) error
	// Delete cascades to contained files and categories.
	Delete(ctx context.Context, id int64) error
	// SetAggregates overwrites the cached file count, the activity
	// timestamp and the classified-since-change flag in one write.
	SetAggregates(ctx context.Context, id int64, fileCount int64, lastActivity time.Time, classifiedSinceChange bool) error
}

// FileStore persists file records. Insert returns ErrDuplicate when the
// id collides, or when the (folder, name) pair collides between two
// supported records; unsupported records carry no name constraint.
// Callers retry allocation.
type FileStore interface {
	// MaxID returns the highest allocated file id, 0 when none exist.
	MaxID(ctx context.Context) (int64, error)
	Insert(ctx context.Context, file *models.File) error
	FindByID(ctx context.Context, id int64) (*models.File, error)
	// ListByFolder returns files ordered by upload time, newest first,
	// records without a timestamp last.
	ListByFolder(ctx context.Context, folderID int64) ([]models.File, error)
	ListByCategory(ctx context.Context, folderID int64, category string) ([]models.File, error)
	// ListByNamePrefix feeds the display-name de-duplication scan.
	ListByNamePrefix(ctx context.Context, folderID int64, prefix string) ([]models.File, error)
	CountByFolder(ctx context.Context, folderID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	// ResetClassification moves the given files back to unclassified and
	// clears their category, ahead of a classification submission.
	ResetClassification(ctx context.Context, ids []int64) error
	// ClearCategory orphans files of a deleted category.
	ClearCategory(ctx context.Context, folderID int64, category string) error
	// ReassignCategory relabels files when a category is renamed.
	ReassignCategory(ctx context.Context, folderID int64, oldName, newName string) error
}

// CategoryStore persists folder-scoped category labels.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	Find(ctx context.Context, folderID int64, name string) (*models.Category, error)
	ListByFolder(ctx context.Context, folderID int64) ([]models.Category, error)
	Rename(ctx context.Context, folderID int64, oldName, newName string) error
	Delete(ctx context.Context, folderID int64, name string) error
}

// Store bundles the four entity stores behind one handle.
type Store struct {
	Users      UserStore
	Folders    FolderStore
	Files      FileStore
	Categories CategoryStore
}
