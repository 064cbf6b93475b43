package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

type FolderService struct {
	store       *store.Store
	storageDir  string
	folderLocks *utils.KeyedMutex
}

func NewFolderService(st *store.Store, storageDir string, folderLocks *utils.KeyedMutex) *FolderService {
	return &FolderService{
		store:       st,
		storageDir:  storageDir,
		folderLocks: folderLocks,
	}
}

func (s *FolderService) Create(ctx context.Context, ownerID int64, name string) (*models.Folder, error) {
	name = trimmedName(name)
	if err := utils.ValidateFolderName(name); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}

	id, err := s.store.Folders.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	folder := &models.Folder{
		ID:           id,
		OwnerID:      ownerID,
		Name:         name,
		LastActivity: &now,
	}
	if err := s.store.Folders.Create(ctx, folder); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, utils.ConflictError("Folder name already in use")
		}
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) List(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	return s.store.Folders.ListByOwner(ctx, ownerID)
}

func (s *FolderService) Find(ctx context.Context, ownerID, folderID int64) (*models.Folder, error) {
	folder, err := s.store.Folders.FindByOwner(ctx, ownerID, folderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("Folder not found")
		}
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) Rename(ctx context.Context, ownerID, folderID int64, newName string) (*models.Folder, error) {
	newName = trimmedName(newName)
	if err := utils.ValidateFolderName(newName); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}
	if _, err := s.Find(ctx, ownerID, folderID); err != nil {
		return nil, err
	}

	if err := s.store.Folders.Rename(ctx, folderID, newName); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, utils.ConflictError("Folder name already in use")
		}
		return nil, err
	}
	if err := s.Sync(ctx, folderID); err != nil {
		return nil, err
	}
	return s.Find(ctx, ownerID, folderID)
}

// Delete removes the folder, its files on disk and the cascading store
// records. It holds the folder lock so an in-flight upload or unzip on
// the same folder cannot interleave with the removal.
func (s *FolderService) Delete(ctx context.Context, ownerID, folderID int64) error {
	if _, err := s.Find(ctx, ownerID, folderID); err != nil {
		return err
	}

	s.folderLocks.Lock(folderID)
	defer s.folderLocks.Unlock(folderID)

	dir := filepath.Join(s.storageDir,
		strconv.FormatInt(ownerID, 10),
		strconv.FormatInt(folderID, 10))
	if err := os.RemoveAll(dir); err != nil {
		return utils.IOFailure("failed to remove folder storage", err)
	}
	return s.store.Folders.Delete(ctx, folderID)
}

// Sync recomputes the cached file count from a live recount and stamps
// the activity timestamp. It runs after every membership change and is
// the defense against count drift; it also clears the
// classified-since-change flag because the folder just changed.
func (s *FolderService) Sync(ctx context.Context, folderID int64) error {
	return s.setAggregates(ctx, folderID, false)
}

// MarkClassified records that a classification submission happened for
// the folder's current contents.
func (s *FolderService) MarkClassified(ctx context.Context, folderID int64) error {
	return s.setAggregates(ctx, folderID, true)
}

func (s *FolderService) setAggregates(ctx context.Context, folderID int64, classified bool) error {
	count, err := s.store.Files.CountByFolder(ctx, folderID)
	if err != nil {
		return err
	}
	return s.store.Folders.SetAggregates(ctx, folderID, count, time.Now(), classified)
}

func trimmedName(name string) string {
	return strings.TrimSpace(name)
}
