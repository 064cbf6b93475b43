package services

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"docuvault/models"
	"docuvault/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFilesDeduplicatesNames(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	for _, want := range []string{"doc.pdf", "doc(1).pdf", "doc(2).pdf"} {
		result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
			{Name: "doc.pdf", Data: []byte("content")},
		})
		require.NoError(t, err)
		require.Len(t, result.Supported, 1)
		assert.Equal(t, want, result.Supported[0].Name)
	}
}

func TestUploadFilesUnsupportedIsMetadataOnly(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "movie.avi", Data: []byte("frames")},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Supported)
	require.Len(t, result.Unsupported, 1)

	f := result.Unsupported[0]
	assert.Equal(t, models.TypeUnsupported, f.Type)
	assert.Nil(t, f.StoragePath)

	// no bytes land on disk for unsupported uploads
	entries, err := os.ReadDir(e.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadFilesRepeatedUnsupportedNames(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	// unsupported uploads keep the raw name, repeats included
	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "tool.exe", Data: []byte("a")},
		{Name: "tool.exe", Data: []byte("b")},
	})
	require.NoError(t, err)
	require.Len(t, result.Unsupported, 2)
	assert.Equal(t, "tool.exe", result.Unsupported[0].Name)
	assert.Equal(t, "tool.exe", result.Unsupported[1].Name)
	assert.NotEqual(t, result.Unsupported[0].ID, result.Unsupported[1].ID)

	got, err := e.st.Folders.FindByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.FileCount)
}

func TestUploadFilesWritesSupportedBytes(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "notes.txt", Data: []byte("hello")},
	})
	require.NoError(t, err)
	require.Len(t, result.Supported, 1)

	f := result.Supported[0]
	require.NotNil(t, f.StoragePath)

	data, err := os.ReadFile(*f.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestUploadFilesValidation(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	t.Run("unknown folder", func(t *testing.T) {
		_, err := e.files.UploadFiles(ctx, user.ID, folder.ID+99, []FileUpload{
			{Name: "a.pdf", Data: []byte("x")},
		})
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := e.files.UploadFiles(ctx, user.ID+99, folder.ID, []FileUpload{
			{Name: "a.pdf", Data: []byte("x")},
		})
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Status)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := e.files.UploadFiles(ctx, user.ID, folder.ID, nil)
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
			{Name: "bad|name.pdf", Data: []byte("x")},
		})
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})
}

func TestUploadFilesSyncsFolderAggregates(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	_, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "a.pdf", Data: []byte("x")},
		{Name: "b.txt", Data: []byte("y")},
		{Name: "c.avi", Data: []byte("z")},
	})
	require.NoError(t, err)

	got, err := e.st.Folders.FindByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.FileCount)
	assert.False(t, got.ClassifiedSinceChange)
	require.NotNil(t, got.LastActivity)
}

func TestDeleteFileRemovesBytesAndRecounts(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "a.pdf", Data: []byte("x")},
		{Name: "b.pdf", Data: []byte("y")},
	})
	require.NoError(t, err)

	victim := result.Supported[0]
	require.NoError(t, e.files.DeleteFile(ctx, user.ID, victim.ID))

	_, err = os.Stat(*victim.StoragePath)
	assert.True(t, os.IsNotExist(err))

	got, err := e.st.Folders.FindByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FileCount)
}

func TestDeleteFileScopedToOwner(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "a.pdf", Data: []byte("x")},
	})
	require.NoError(t, err)

	err = e.files.DeleteFile(ctx, user.ID+1, result.Supported[0].ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestUploadFilesPartialFailureStillRecounts(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	// occupy the second file's storage path with a directory so its
	// disk write fails after the first member is already in
	blocked := filepath.Join(e.dir,
		strconv.FormatInt(user.ID, 10),
		strconv.FormatInt(folder.ID, 10),
		"2.pdf")
	require.NoError(t, os.MkdirAll(blocked, 0o755))

	_, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "a.pdf", Data: []byte("x")},
		{Name: "b.pdf", Data: []byte("y")},
	})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)

	// the stored member is counted even though the batch failed
	got, err := e.st.Folders.FindByID(ctx, folder.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FileCount)
}

func TestUploadFilesAllocatesMonotonicIDs(t *testing.T) {
	srv := okServer(t)
	e := newEnv(t, srv.URL, srv.URL)
	ctx := context.Background()

	user := seedUser(t, e.st)
	folder := seedFolder(t, e.st, user.ID, "docs")

	result, err := e.files.UploadFiles(ctx, user.ID, folder.ID, []FileUpload{
		{Name: "a.pdf", Data: []byte("1")},
		{Name: "b.pdf", Data: []byte("2")},
		{Name: "c.pdf", Data: []byte("3")},
	})
	require.NoError(t, err)
	require.Len(t, result.Supported, 3)

	seen := make(map[int64]bool)
	for _, f := range result.Supported {
		assert.False(t, seen[f.ID], "duplicate id %d", f.ID)
		seen[f.ID] = true
	}
}
