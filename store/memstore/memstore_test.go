package memstore

import (
	"context"
	"testing"
	"time"

	"docuvault/models"
	"docuvault/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileUniquenessRules(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 1, FolderID: 1, Name: "a.pdf"}))

	// same id
	assert.ErrorIs(t, st.Files.Insert(ctx, &models.File{ID: 1, FolderID: 2, Name: "b.pdf"}), store.ErrDuplicate)
	// same name in the same folder
	assert.ErrorIs(t, st.Files.Insert(ctx, &models.File{ID: 2, FolderID: 1, Name: "a.pdf"}), store.ErrDuplicate)
	// same name in a different folder is fine
	assert.NoError(t, st.Files.Insert(ctx, &models.File{ID: 3, FolderID: 2, Name: "a.pdf"}))
}

func TestUnsupportedNamesNotConstrained(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 1, FolderID: 1, Name: "tool.exe", Type: models.TypeUnsupported}))

	// a second unsupported record may repeat the name
	assert.NoError(t, st.Files.Insert(ctx, &models.File{ID: 2, FolderID: 1, Name: "tool.exe", Type: models.TypeUnsupported}))

	// a supported record may share a name with an unsupported one
	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 3, FolderID: 1, Name: "b.pdf", Type: "pdf"}))
	assert.NoError(t, st.Files.Insert(ctx, &models.File{ID: 4, FolderID: 1, Name: "b.pdf", Type: models.TypeUnsupported}))
}

func TestMaxID(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	max, err := st.Files.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), max)

	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 7, FolderID: 1, Name: "a.pdf"}))
	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 3, FolderID: 1, Name: "b.pdf"}))

	max, err = st.Files.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), max)
}

func TestListByFolderNewestFirstNullsLast(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	old := time.Now().Add(-time.Hour)
	recent := time.Now()

	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 1, FolderID: 1, Name: "old.pdf", UploadedAt: &old}))
	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 2, FolderID: 1, Name: "none.pdf"}))
	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 3, FolderID: 1, Name: "new.pdf", UploadedAt: &recent}))

	files, err := st.Files.ListByFolder(ctx, 1)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "new.pdf", files[0].Name)
	assert.Equal(t, "old.pdf", files[1].Name)
	assert.Equal(t, "none.pdf", files[2].Name)
}

func TestUserDeleteCascades(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	require.NoError(t, st.Users.Create(ctx, &models.User{ID: 1, LoginID: "a1", Email: "a@b.c"}))
	require.NoError(t, st.Folders.Create(ctx, &models.Folder{ID: 1, OwnerID: 1, Name: "docs"}))
	require.NoError(t, st.Files.Insert(ctx, &models.File{ID: 1, OwnerID: 1, FolderID: 1, Name: "a.pdf"}))
	require.NoError(t, st.Categories.Create(ctx, &models.Category{FolderID: 1, Name: "invoices"}))

	require.NoError(t, st.Users.Delete(ctx, 1))

	_, err := st.Folders.FindByID(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Files.FindByID(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Categories.Find(ctx, 1, "invoices")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFolderRenameDuplicate(t *testing.T) {
	_, st := New()
	ctx := context.Background()

	require.NoError(t, st.Folders.Create(ctx, &models.Folder{ID: 1, OwnerID: 1, Name: "a"}))
	require.NoError(t, st.Folders.Create(ctx, &models.Folder{ID: 2, OwnerID: 1, Name: "b"}))

	assert.ErrorIs(t, st.Folders.Rename(ctx, 2, "a"), store.ErrDuplicate)
	assert.NoError(t, st.Folders.Rename(ctx, 2, "c"))
}
