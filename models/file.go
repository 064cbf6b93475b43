package models

import (
	"time"
)

// TransformState tracks a file through the external text-extraction
// pipeline. Legal transitions: Waiting -> InProgress -> Done.
type TransformState int

const (
	TransformWaiting    TransformState = 0
	TransformInProgress TransformState = 1
	TransformDone       TransformState = 2
)

// ClassificationState tracks a file through the external classification
// pipeline. Legal transitions: Unclassified -> InProgress -> Done.
// Excluded is terminal: files extracted from archives carry it and are
// skipped when the folder is resubmitted for classification.
type ClassificationState int

const (
	ClassificationUnclassified ClassificationState = 0
	ClassificationInProgress   ClassificationState = 1
	ClassificationDone         ClassificationState = 2
	ClassificationExcluded     ClassificationState = 4
)

// TypeUnsupported marks files whose extension is outside the supported
// set; those records keep metadata only and no bytes on disk.
const TypeUnsupported = "unsupported"

type File struct {
	ID       int64  `bson:"_id" json:"file_id"`
	OwnerID  int64  `bson:"owner_id" json:"user_id"`
	FolderID int64  `bson:"folder_id" json:"folder_id"`
	Name     string `bson:"name" json:"file_name"`
	Type     string `bson:"type" json:"file_type"`

	// StoragePath is nil for unsupported types: recorded but not stored.
	StoragePath *string `bson:"storage_path,omitempty" json:"file_path,omitempty"`

	TransformState      TransformState      `bson:"transform_state" json:"is_transform"`
	ClassificationState ClassificationState `bson:"classification_state" json:"is_classification"`

	Category          *string `bson:"category,omitempty" json:"category,omitempty"`
	TransformTextPath *string `bson:"transform_text_path,omitempty" json:"transform_txt_path,omitempty"`

	UploadedAt *time.Time `bson:"uploaded_at,omitempty" json:"uploaded_at,omitempty"`
}

// CanTransitionTransform reports whether the transform axis may move
// from its current state to next.
func (f *File) CanTransitionTransform(next TransformState) bool {
	switch f.TransformState {
	case TransformWaiting:
		return next == TransformInProgress
	case TransformInProgress:
		return next == TransformDone
	default:
		return false
	}
}

// CanTransitionClassification reports whether the classification axis
// may move from its current state to next. Excluded never leaves.
func (f *File) CanTransitionClassification(next ClassificationState) bool {
	switch f.ClassificationState {
	case ClassificationUnclassified:
		return next == ClassificationInProgress
	case ClassificationInProgress:
		return next == ClassificationDone
	default:
		return false
	}
}

// Supported reports whether the file carries stored bytes.
func (f *File) Supported() bool {
	return f.Type != TypeUnsupported
}
