package services

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

// ArchiveService expands stored ZIP archives into first-class tracked
// files, each allocated its own id and fed through the storage writer.
type ArchiveService struct {
	store         *store.Store
	fileService   *FileService
	folderService *FolderService
	folderLocks   *utils.KeyedMutex
}

func NewArchiveService(st *store.Store, fileService *FileService, folderService *FolderService, folderLocks *utils.KeyedMutex) *ArchiveService {
	return &ArchiveService{
		store:         st,
		fileService:   fileService,
		folderService: folderService,
		folderLocks:   folderLocks,
	}
}

// Expand walks the archive's member list. Directory entries are
// skipped; any member read failure aborts the whole expansion rather
// than silently skipping. Extracted members carry the excluded
// classification state so folder reclassification does not resubmit
// them.
func (s *ArchiveService) Expand(ctx context.Context, userID, folderID, zipFileID int64) (*UploadResult, error) {
	if _, err := s.store.Folders.FindByOwner(ctx, userID, folderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.NotFoundError("Folder not found")
		}
		return nil, err
	}

	archive, err := s.store.Files.FindByID(ctx, zipFileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, utils.BadRequestError("Zip file record not found")
		}
		return nil, err
	}
	if archive.StoragePath == nil {
		return nil, utils.BadRequestError("Zip file has no stored bytes")
	}
	if _, err := os.Stat(*archive.StoragePath); err != nil {
		return nil, utils.BadRequestError("Zip file path does not exist")
	}

	s.folderLocks.Lock(folderID)
	defer s.folderLocks.Unlock(folderID)

	reader, err := zip.OpenReader(*archive.StoragePath)
	if err != nil {
		return nil, utils.FormatError("Corrupt or unreadable zip archive", err)
	}
	defer reader.Close()

	var extracted []models.File
	for _, member := range reader.File {
		if member.FileInfo().IsDir() {
			continue
		}

		data, err := readMember(member)
		if err != nil {
			s.fileService.syncAfterPartialFailure(ctx, folderID, len(extracted))
			return nil, utils.IOFailure("Failed to read zip member "+member.Name, err)
		}

		baseName := path.Base(strings.ReplaceAll(member.Name, "\\", "/"))
		file, err := s.fileService.StoreFile(ctx, archive.OwnerID, folderID, baseName, data, true)
		if err != nil {
			s.fileService.syncAfterPartialFailure(ctx, folderID, len(extracted))
			return nil, err
		}
		extracted = append(extracted, *file)
	}

	if err := s.folderService.Sync(ctx, folderID); err != nil {
		return nil, err
	}
	return splitResult(folderID, extracted), nil
}

func readMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
