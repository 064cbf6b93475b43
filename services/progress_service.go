package services

import (
	"context"
	"math"

	"docuvault/models"
	"docuvault/store"
)

// AxisProgress tallies one pipeline axis over a folder's files.
type AxisProgress struct {
	Waiting    int     `json:"waiting"`
	InProgress int     `json:"in_progress"`
	Done       int     `json:"done"`
	Rate       float64 `json:"rate"`
}

// ProgressReport holds both axes. The axes are independent: a file can
// be transform-done and classification-waiting at the same time.
type ProgressReport struct {
	FolderID       int64        `json:"folder_id"`
	TotalFiles     int          `json:"total_files"`
	Transform      AxisProgress `json:"transform"`
	Classification AxisProgress `json:"classification"`
}

type ProgressService struct {
	store         *store.Store
	folderService *FolderService
}

func NewProgressService(st *store.Store, folderService *FolderService) *ProgressService {
	return &ProgressService{store: st, folderService: folderService}
}

// Progress computes completion statistics for the folder. An empty
// folder reports zeros everywhere rather than failing.
func (s *ProgressService) Progress(ctx context.Context, userID, folderID int64) (*ProgressReport, error) {
	if _, err := s.folderService.Find(ctx, userID, folderID); err != nil {
		return nil, err
	}

	files, err := s.store.Files.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	report := &ProgressReport{FolderID: folderID, TotalFiles: len(files)}
	for _, f := range files {
		switch f.TransformState {
		case models.TransformWaiting:
			report.Transform.Waiting++
		case models.TransformInProgress:
			report.Transform.InProgress++
		case models.TransformDone:
			report.Transform.Done++
		}
		switch f.ClassificationState {
		case models.ClassificationUnclassified:
			report.Classification.Waiting++
		case models.ClassificationInProgress:
			report.Classification.InProgress++
		case models.ClassificationDone:
			report.Classification.Done++
		}
	}

	if total := len(files); total > 0 {
		report.Transform.Rate = completionRate(report.Transform.Done, total)
		report.Classification.Rate = completionRate(report.Classification.Done, total)
	}
	return report, nil
}

// completionRate rounds done/total to one decimal place, in percent.
func completionRate(done, total int) float64 {
	return math.Round(float64(done)/float64(total)*1000) / 10
}
