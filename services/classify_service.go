package services

import (
	"context"

	"docuvault/models"
	"docuvault/store"
	"docuvault/utils"
)

// ClassifyService submits a folder's eligible files to the external
// classification pipeline.
type ClassifyService struct {
	store         *store.Store
	folderService *FolderService
	notifyService *NotifyService
}

func NewClassifyService(st *store.Store, folderService *FolderService, notifyService *NotifyService) *ClassifyService {
	return &ClassifyService{
		store:         st,
		folderService: folderService,
		notifyService: notifyService,
	}
}

// ClassifyResult is what the classify endpoint returns: how many files
// were submitted and the downstream service's response body.
type ClassifyResult struct {
	FolderID  int64  `json:"folder_id"`
	Submitted int    `json:"submitted"`
	Response  string `json:"response"`
}

// SubmitFolder collects files that finished transformation and are not
// excluded, resets their classification state and category, and posts
// the batch to the classifier. The reset is a synchronous precondition;
// only the outbound call can fail with ServiceUnavailable.
func (s *ClassifyService) SubmitFolder(ctx context.Context, userID, folderID int64) (*ClassifyResult, error) {
	if _, err := s.folderService.Find(ctx, userID, folderID); err != nil {
		return nil, err
	}

	files, err := s.store.Files.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	var ids []int64
	var payload []FilePayload
	for _, f := range files {
		if f.TransformState != models.TransformDone {
			continue
		}
		if f.ClassificationState == models.ClassificationExcluded {
			continue
		}
		ids = append(ids, f.ID)
		payload = append(payload, FilePayload{FileID: f.ID, FileType: f.Type})
	}
	if len(ids) == 0 {
		return nil, utils.BadRequestError("No files eligible for classification")
	}

	if err := s.store.Files.ResetClassification(ctx, ids); err != nil {
		return nil, err
	}

	body, err := s.notifyService.SubmitClassification(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := s.folderService.MarkClassified(ctx, folderID); err != nil {
		return nil, err
	}
	return &ClassifyResult{FolderID: folderID, Submitted: len(ids), Response: body}, nil
}
