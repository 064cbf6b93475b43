package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docuvault/models"
	"docuvault/store"
	"docuvault/store/memstore"
	"docuvault/utils"

	"github.com/stretchr/testify/require"
)

// env bundles every service over an in-memory store and a temp storage
// directory.
type env struct {
	st         *store.Store
	notify     *NotifyService
	folders    *FolderService
	files      *FileService
	archive    *ArchiveService
	classify   *ClassifyService
	categories *CategoryService
	progress   *ProgressService
	download   *DownloadService
	auth       *AuthService
	dir        string
}

func newEnv(t *testing.T, extractorURL, classifierURL string) *env {
	t.Helper()

	_, st := memstore.New()
	dir := t.TempDir()
	locks := utils.NewKeyedMutex()

	notify := NewNotifyService(extractorURL, classifierURL, time.Second, 2)
	t.Cleanup(notify.Close)

	folders := NewFolderService(st, dir, locks)
	files := NewFileService(st, folders, notify, dir, 10<<20, locks)

	return &env{
		st:         st,
		notify:     notify,
		folders:    folders,
		files:      files,
		archive:    NewArchiveService(st, files, folders, locks),
		classify:   NewClassifyService(st, folders, notify),
		categories: NewCategoryService(st, folders),
		progress:   NewProgressService(st, folders),
		download:   NewDownloadService(st, folders),
		auth:       NewAuthService(st, folders, "test-secret-0123456789", time.Hour, dir),
		dir:        dir,
	}
}

// okServer accepts every pipeline call with a 200.
func okServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"accepted"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func seedUser(t *testing.T, st *store.Store) *models.User {
	t.Helper()
	ctx := context.Background()

	id, err := st.Users.NextID(ctx)
	require.NoError(t, err)

	user := &models.User{
		ID:           id,
		LoginID:      "tester01",
		Email:        "tester01@example.com",
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, st.Users.Create(ctx, user))
	return user
}

func seedFolder(t *testing.T, st *store.Store, ownerID int64, name string) *models.Folder {
	t.Helper()
	ctx := context.Background()

	id, err := st.Folders.NextID(ctx)
	require.NoError(t, err)

	now := time.Now()
	folder := &models.Folder{
		ID:           id,
		OwnerID:      ownerID,
		Name:         name,
		LastActivity: &now,
	}
	require.NoError(t, st.Folders.Create(ctx, folder))
	return folder
}
