package services

import (
	"context"
	"errors"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

type CategoryService struct {
	store         *store.Store
	folderService *FolderService
}

func NewCategoryService(st *store.Store, folderService *FolderService) *CategoryService {
	return &CategoryService{store: st, folderService: folderService}
}

func (s *CategoryService) List(ctx context.Context, ownerID, folderID int64) ([]models.Category, error) {
	if _, err := s.folderService.Find(ctx, ownerID, folderID); err != nil {
		return nil, err
	}
	return s.store.Categories.ListByFolder(ctx, folderID)
}

func (s *CategoryService) Create(ctx context.Context, ownerID, folderID int64, name string) (*models.Category, error) {
	if _, err := s.folderService.Find(ctx, ownerID, folderID); err != nil {
		return nil, err
	}
	if err := utils.ValidateCategoryName(name); err != nil {
		return nil, utils.BadRequestError(err.Error())
	}

	category := &models.Category{FolderID: folderID, Name: name}
	if err := s.store.Categories.Create(ctx, category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, utils.ConflictError("Category already exists")
		}
		return nil, err
	}
	if err := s.folderService.Sync(ctx, folderID); err != nil {
		return nil, err
	}
	return category, nil
}

// Rename moves the label and relabels member files so no file is left
// pointing at a name that no longer exists.
func (s *CategoryService) Rename(ctx context.Context, ownerID, folderID int64, oldName, newName string) error {
	if _, err := s.folderService.Find(ctx, ownerID, folderID); err != nil {
		return err
	}
	if err := utils.ValidateCategoryName(newName); err != nil {
		return utils.BadRequestError(err.Error())
	}

	if err := s.store.Categories.Rename(ctx, folderID, oldName, newName); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return utils.NotFoundError("Category not found")
		case errors.Is(err, store.ErrDuplicate):
			return utils.ConflictError("Category already exists")
		}
		return err
	}
	if err := s.store.Files.ReassignCategory(ctx, folderID, oldName, newName); err != nil {
		return err
	}
	return s.folderService.Sync(ctx, folderID)
}

// Delete removes the label and orphans its member files back to
// uncategorized; the files themselves are untouched.
func (s *CategoryService) Delete(ctx context.Context, ownerID, folderID int64, name string) error {
	if _, err := s.folderService.Find(ctx, ownerID, folderID); err != nil {
		return err
	}

	if err := s.store.Categories.Delete(ctx, folderID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundError("Category not found")
		}
		return err
	}
	if err := s.store.Files.ClearCategory(ctx, folderID, name); err != nil {
		return err
	}
	return s.folderService.Sync(ctx, folderID)
}
