package services

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

// uncategorizedDir is the archive folder files land in when no
// category has been assigned yet.
const uncategorizedDir = "uncategorized"

// DownloadService streams stored bytes back out: whole folders and
// categories as ZIP archives, single files as-is. Files missing on
// disk are skipped with a warning instead of failing the archive.
type DownloadService struct {
	store         *store.Store
	folderService *FolderService
}

func NewDownloadService(st *store.Store, folderService *FolderService) *DownloadService {
	return &DownloadService{store: st, folderService: folderService}
}

// FolderArchive packs every stored file of the folder into a ZIP,
// grouped into per-category directories.
func (s *DownloadService) FolderArchive(ctx context.Context, userID, folderID int64) (string, []byte, error) {
	folder, err := s.folderService.Find(ctx, userID, folderID)
	if err != nil {
		return "", nil, err
	}

	files, err := s.store.Files.ListByFolder(ctx, folderID)
	if err != nil {
		return "", nil, err
	}
	if len(files) == 0 {
		return "", nil, utils.NotFoundError("Folder contains no files")
	}

	data, err := buildArchive(files, func(f *models.File) string {
		dir := uncategorizedDir
		if f.Category != nil && *f.Category != "" {
			dir = *f.Category
		}
		return path.Join(dir, f.Name)
	})
	if err != nil {
		return "", nil, err
	}
	return folder.Name + ".zip", data, nil
}

// CategoryArchive packs the files labeled with one category.
func (s *DownloadService) CategoryArchive(ctx context.Context, userID, folderID int64, category string) (string, []byte, error) {
	if _, err := s.folderService.Find(ctx, userID, folderID); err != nil {
		return "", nil, err
	}

	files, err := s.store.Files.ListByCategory(ctx, folderID, category)
	if err != nil {
		return "", nil, err
	}
	if len(files) == 0 {
		return "", nil, utils.NotFoundError("Category contains no files")
	}

	data, err := buildArchive(files, func(f *models.File) string { return f.Name })
	if err != nil {
		return "", nil, err
	}
	return category + ".zip", data, nil
}

// FileForDownload resolves a single stored file to its on-disk path.
func (s *DownloadService) FileForDownload(ctx context.Context, userID, fileID int64) (*models.File, error) {
	file, err := s.store.Files.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("File not found")
		}
		return nil, err
	}
	if file.OwnerID != userID || file.StoragePath == nil {
		return nil, utils.NotFoundError("File not found")
	}
	if _, err := os.Stat(*file.StoragePath); err != nil {
		return nil, utils.NotFoundError("File not found")
	}
	return file, nil
}

func buildArchive(files []models.File, arcname func(*models.File) string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i := range files {
		f := &files[i]
		if f.StoragePath == nil {
			continue
		}
		data, err := os.ReadFile(*f.StoragePath)
		if err != nil {
			utils.LogWarning("skipping file %d, bytes missing on disk: %v", f.ID, err)
			continue
		}
		w, err := zw.Create(arcname(f))
		if err != nil {
			zw.Close()
			return nil, utils.IOFailure("failed to build archive", err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return nil, utils.IOFailure("failed to build archive", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, utils.IOFailure("failed to finalize archive", err)
	}
	return buf.Bytes(), nil
}
