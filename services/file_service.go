package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

// supportedExtensions lists the types the transform pipeline accepts.
// Anything else is recorded as metadata only and never written to disk.
var supportedExtensions = map[string]struct{}{
	"pdf": {}, "hwp": {}, "docx": {}, "pptx": {}, "xlsx": {},
	"jpg": {}, "jpeg": {}, "png": {}, "zip": {}, "txt": {},
}

// maxAllocAttempts bounds the id-allocation retry loop. Allocation is
// not reserved, so two concurrent writers may observe the same max id;
// the unique index rejects the loser and it re-reads.
const maxAllocAttempts = 5

type FileService struct {
	store         *store.Store
	folderService *FolderService
	notifyService *NotifyService
	storageDir    string
	maxFileSize   int64
	folderLocks   *utils.KeyedMutex
}

// FileUpload is one named byte payload of an upload request.
type FileUpload struct {
	Name string
	Data []byte
}

// UploadResult splits processed records into supported and unsupported
// lists, the shape the upload and unzip endpoints return.
type UploadResult struct {
	Processed   int           `json:"processed"`
	FolderID    int64         `json:"folder_id"`
	Supported   []models.File `json:"supported_files"`
	Unsupported []models.File `json:"unsupported_files"`
}

func NewFileService(st *store.Store, folderService *FolderService, notifyService *NotifyService, storageDir string, maxFileSize int64, folderLocks *utils.KeyedMutex) *FileService {
	return &FileService{
		store:         st,
		folderService: folderService,
		notifyService: notifyService,
		storageDir:    storageDir,
		maxFileSize:   maxFileSize,
		folderLocks:   folderLocks,
	}
}

// UploadFiles ingests one or more payloads into the folder, resolves
// display-name collisions, writes supported bytes to disk and syncs the
// folder aggregates once at the end.
func (s *FileService) UploadFiles(ctx context.Context, userID, folderID int64, uploads []FileUpload) (*UploadResult, error) {
	if _, err := s.store.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("User not found")
		}
		return nil, err
	}
	if _, err := s.store.Folders.FindByOwner(ctx, userID, folderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("Folder not found")
		}
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, utils.BadRequestError("No files to upload")
	}
	for _, u := range uploads {
		if err := utils.ValidateFileName(u.Name); err != nil {
			return nil, utils.BadRequestError(err.Error())
		}
		if int64(len(u.Data)) > s.maxFileSize {
			return nil, utils.BadRequestError(fmt.Sprintf("file %s exceeds maximum size of %d bytes", u.Name, s.maxFileSize))
		}
	}

	s.folderLocks.Lock(folderID)
	defer s.folderLocks.Unlock(folderID)

	var stored []models.File
	for _, u := range uploads {
		file, err := s.StoreFile(ctx, userID, folderID, u.Name, u.Data, false)
		if err != nil {
			// earlier members of the batch are already in, keep the
			// cached count honest before surfacing the failure
			s.syncAfterPartialFailure(ctx, folderID, len(stored))
			return nil, err
		}
		stored = append(stored, *file)
	}

	if err := s.folderService.Sync(ctx, folderID); err != nil {
		return nil, err
	}
	return splitResult(folderID, stored), nil
}

// StoreFile persists a single payload: metadata-only for unsupported
// extensions, bytes plus record otherwise. Supported non-archive files
// trigger the extractor hook; archive-origin files enter the excluded
// classification state. Callers mutating a folder hold its lock.
func (s *FileService) StoreFile(ctx context.Context, userID, folderID int64, rawName string, data []byte, fromArchive bool) (*models.File, error) {
	stem, ext := splitFileName(rawName)
	now := time.Now()

	if _, ok := supportedExtensions[ext]; !ok {
		return s.insertWithAllocatedID(ctx, func(id int64) *models.File {
			return &models.File{
				ID:         id,
				OwnerID:    userID,
				FolderID:   folderID,
				Name:       rawName,
				Type:       models.TypeUnsupported,
				UploadedAt: &now,
			}
		}, nil)
	}

	existing, err := s.store.Files.ListByNamePrefix(ctx, folderID, stem)
	if err != nil {
		return nil, err
	}
	displayName := resolveDisplayName(existing, stem, ext)

	file, err := s.insertWithAllocatedID(ctx, func(id int64) *models.File {
		f := &models.File{
			ID:         id,
			OwnerID:    userID,
			FolderID:   folderID,
			Name:       displayName,
			Type:       ext,
			UploadedAt: &now,
		}
		if fromArchive {
			f.ClassificationState = models.ClassificationExcluded
		}
		return f
	}, data)
	if err != nil {
		return nil, err
	}

	if ext != "zip" {
		s.notifyService.NotifyNewFile(file.ID, ext)
	}
	return file, nil
}

// insertWithAllocatedID runs the max+1 allocation loop. When data is
// non-nil the bytes are written before the insert so a disk failure
// never leaves a record pointing at nothing; a duplicate-key loss
// removes the written bytes and retries with a fresh id. Callers hold
// the folder lock while display names are resolved and unsupported
// names are unconstrained, so a duplicate here is always the id and a
// fresh id is the fix.
func (s *FileService) insertWithAllocatedID(ctx context.Context, build func(id int64) *models.File, data []byte) (*models.File, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		maxID, err := s.store.Files.MaxID(ctx)
		if err != nil {
			return nil, err
		}
		file := build(maxID + 1)

		if data != nil {
			path := s.filePath(file.OwnerID, file.FolderID, file.ID, file.Type)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, utils.IOFailure("failed to prepare storage directory", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, utils.IOFailure("failed to write file to storage", err)
			}
			file.StoragePath = &path
		}

		err = s.store.Files.Insert(ctx, file)
		if err == nil {
			return file, nil
		}
		if file.StoragePath != nil {
			os.Remove(*file.StoragePath)
		}
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		return nil, err
	}
	return nil, utils.ConflictError("could not allocate a unique file id, please retry")
}

// syncAfterPartialFailure recounts the folder when a batch dies after
// some members were already inserted. The original error is what the
// caller reports, so a sync failure here is only logged.
func (s *FileService) syncAfterPartialFailure(ctx context.Context, folderID int64, storedCount int) {
	if storedCount == 0 {
		return
	}
	if err := s.folderService.Sync(ctx, folderID); err != nil {
		utils.LogWarning("failed to sync folder %d after partial batch failure: %v", folderID, err)
	}
}

func (s *FileService) filePath(userID, folderID, fileID int64, ext string) string {
	name := strconv.FormatInt(fileID, 10)
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(s.storageDir,
		strconv.FormatInt(userID, 10),
		strconv.FormatInt(folderID, 10),
		name)
}

// ListFolderFiles returns the folder's files newest first.
func (s *FileService) ListFolderFiles(ctx context.Context, userID, folderID int64) ([]models.File, error) {
	if _, err := s.store.Folders.FindByOwner(ctx, userID, folderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("Folder not found")
		}
		return nil, err
	}
	return s.store.Files.ListByFolder(ctx, folderID)
}

// DeleteFile removes the record and its bytes, then syncs the folder.
func (s *FileService) DeleteFile(ctx context.Context, userID, fileID int64) error {
	file, err := s.store.Files.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundError("File not found")
		}
		return err
	}
	if file.OwnerID != userID {
		return utils.NotFoundError("File not found")
	}

	s.folderLocks.Lock(file.FolderID)
	defer s.folderLocks.Unlock(file.FolderID)

	if file.StoragePath != nil {
		if err := os.Remove(*file.StoragePath); err != nil && !os.IsNotExist(err) {
			utils.LogWarning("failed to remove stored bytes for file %d: %v", file.ID, err)
		}
	}
	if err := s.store.Files.Delete(ctx, fileID); err != nil {
		return err
	}
	return s.folderService.Sync(ctx, file.FolderID)
}

func splitResult(folderID int64, stored []models.File) *UploadResult {
	result := &UploadResult{
		Processed:   len(stored),
		FolderID:    folderID,
		Supported:   []models.File{},
		Unsupported: []models.File{},
	}
	for _, f := range stored {
		if f.Supported() {
			result.Supported = append(result.Supported, f)
		} else {
			result.Unsupported = append(result.Unsupported, f)
		}
	}
	return result
}
