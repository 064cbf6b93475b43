package services

import (
	"context"
	"fmt"
	"testing"

	"docuvault/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressEmptyFolder(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	report, err := e.progress.Progress(ctx, user.ID, folder.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalFiles)
	assert.Equal(t, AxisProgress{}, report.Transform)
	assert.Equal(t, AxisProgress{}, report.Classification)
}

func TestProgressMixedStates(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	states := []models.TransformState{
		models.TransformDone,
		models.TransformDone,
		models.TransformInProgress,
		models.TransformWaiting,
	}
	for i, st := range states {
		seedFile(t, e, user.ID, folder.ID, int64(i+1), fmt.Sprintf("f%d.pdf", i), st, models.ClassificationUnclassified)
	}

	report, err := e.progress.Progress(ctx, user.ID, folder.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalFiles)
	assert.Equal(t, 2, report.Transform.Done)
	assert.Equal(t, 1, report.Transform.InProgress)
	assert.Equal(t, 1, report.Transform.Waiting)
	assert.Equal(t, 50.0, report.Transform.Rate)

	assert.Equal(t, 4, report.Classification.Waiting)
	assert.Equal(t, 0.0, report.Classification.Rate)
}

func TestProgressExcludedCountsTowardTotalOnly(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	seedFile(t, e, user.ID, folder.ID, 1, "a.pdf", models.TransformDone, models.ClassificationDone)
	seedFile(t, e, user.ID, folder.ID, 2, "b.pdf", models.TransformDone, models.ClassificationExcluded)

	report, err := e.progress.Progress(ctx, user.ID, folder.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 1, report.Classification.Done)
	assert.Equal(t, 0, report.Classification.Waiting)
	// excluded files dilute the rate without appearing in any bucket
	assert.Equal(t, 50.0, report.Classification.Rate)
}

func TestProgressRateRounding(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	seedFile(t, e, user.ID, folder.ID, 1, "a.pdf", models.TransformDone, models.ClassificationUnclassified)
	seedFile(t, e, user.ID, folder.ID, 2, "b.pdf", models.TransformWaiting, models.ClassificationUnclassified)
	seedFile(t, e, user.ID, folder.ID, 3, "c.pdf", models.TransformWaiting, models.ClassificationUnclassified)

	report, err := e.progress.Progress(ctx, user.ID, folder.ID)
	require.NoError(t, err)

	// 1/3 rounds to one decimal place
	assert.Equal(t, 33.3, report.Transform.Rate)
}
