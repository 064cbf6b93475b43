// Package memstore holds an in-memory implementation of the store
// interfaces. It backs the service tests and mirrors the uniqueness
// rules the mongo indexes enforce in production.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"docuvault/models"
	"docuvault/store"
)

type MemStore struct {
	mu sync.RWMutex

	users      map[int64]models.User
	folders    map[int64]models.Folder
	files      map[int64]models.File
	categories map[int64]map[string]models.Category

	nextUserID   int64
	nextFolderID int64
}

// New returns an empty in-memory store bundle.
func New() (*MemStore, *store.Store) {
	m := &MemStore{
		users:      make(map[int64]models.User),
		folders:    make(map[int64]models.Folder),
		files:      make(map[int64]models.File),
		categories: make(map[int64]map[string]models.Category),
	}
	return m, &store.Store{
		Users:      (*userStore)(m),
		Folders:    (*folderStore)(m),
		Files:      (*fileStore)(m),
		Categories: (*categoryStore)(m),
	}
}

// --- users ---

type userStore MemStore

func (s *userStore) NextID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	return s.nextUserID, nil
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.LoginID == user.LoginID || u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	if _, ok := s.users[user.ID]; ok {
		return store.ErrDuplicate
	}
	s.users[user.ID] = *user
	return nil
}

func (s *userStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *userStore) FindByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.LoginID == loginID {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) UpdateAccessToken(ctx context.Context, id int64, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.AccessToken = token
	s.users[id] = u
	return nil
}

func (s *userStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	for fid, f := range s.folders {
		if f.OwnerID == id {
			delete(s.folders, fid)
			delete(s.categories, fid)
		}
	}
	for fid, f := range s.files {
		if f.OwnerID == id {
			delete(s.files, fid)
		}
	}
	return nil
}

// --- folders ---

type folderStore MemStore

func (s *folderStore) NextID(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextFolderID++
	return s.nextFolderID, nil
}

func (s *folderStore) Create(ctx context.Context, folder *models.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.folders {
		if f.OwnerID == folder.OwnerID && f.Name == folder.Name {
			return store.ErrDuplicate
		}
	}
	if _, ok := s.folders[folder.ID]; ok {
		return store.ErrDuplicate
	}
	s.folders[folder.ID] = *folder
	return nil
}

func (s *folderStore) FindByID(ctx context.Context, id int64) (*models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.folders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (s *folderStore) FindByOwner(ctx context.Context, ownerID, folderID int64) (*models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.folders[folderID]
	if !ok || f.OwnerID != ownerID {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (s *folderStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Folder
	for _, f := range s.folders {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastActivity, out[j].LastActivity
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

func (s *folderStore) Rename(ctx context.Context, id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.folders[id]
	if !ok {
		return store.ErrNotFound
	}
	for fid, other := range s.folders {
		if fid != id && other.OwnerID == f.OwnerID && other.Name == name {
			return store.ErrDuplicate
		}
	}
	f.Name = name
	s.folders[id] = f
	return nil
}

func (s *folderStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.folders[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.folders, id)
	delete(s.categories, id)
	for fid, f := range s.files {
		if f.FolderID == id {
			delete(s.files, fid)
		}
	}
	return nil
}

func (s *folderStore) SetAggregates(ctx context.Context, id int64, fileCount int64, lastActivity time.Time, classifiedSinceChange bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.folders[id]
	if !ok {
		return store.ErrNotFound
	}
	ts := lastActivity
	f.FileCount = fileCount
	f.LastActivity = &ts
	f.ClassifiedSinceChange = classifiedSinceChange
	s.folders[id] = f
	return nil
}

// --- files ---

type fileStore MemStore

func (s *fileStore) MaxID(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max int64
	for id := range s.files {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (s *fileStore) Insert(ctx context.Context, file *models.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[file.ID]; ok {
		return store.ErrDuplicate
	}
	// Name uniqueness covers supported records only; unsupported uploads
	// keep their raw name and may repeat.
	if file.Type != models.TypeUnsupported {
		for _, f := range s.files {
			if f.FolderID == file.FolderID && f.Name == file.Name && f.Type != models.TypeUnsupported {
				return store.ErrDuplicate
			}
		}
	}
	s.files[file.ID] = *file
	return nil
}

func (s *fileStore) FindByID(ctx context.Context, id int64) (*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (s *fileStore) ListByFolder(ctx context.Context, folderID int64) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.File
	for _, f := range s.files {
		if f.FolderID == folderID {
			out = append(out, f)
		}
	}
	sortByUploadedAt(out)
	return out, nil
}

func (s *fileStore) ListByCategory(ctx context.Context, folderID int64, category string) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.File
	for _, f := range s.files {
		if f.FolderID == folderID && f.Category != nil && *f.Category == category {
			out = append(out, f)
		}
	}
	sortByUploadedAt(out)
	return out, nil
}

func (s *fileStore) ListByNamePrefix(ctx context.Context, folderID int64, prefix string) ([]models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.File
	for _, f := range s.files {
		if f.FolderID == folderID && strings.HasPrefix(f.Name, prefix) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fileStore) CountByFolder(ctx context.Context, folderID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, f := range s.files {
		if f.FolderID == folderID {
			n++
		}
	}
	return n, nil
}

func (s *fileStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.files, id)
	return nil
}

func (s *fileStore) ResetClassification(ctx context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		f, ok := s.files[id]
		if !ok {
			continue
		}
		f.ClassificationState = models.ClassificationUnclassified
		f.Category = nil
		s.files[id] = f
	}
	return nil
}

func (s *fileStore) ClearCategory(ctx context.Context, folderID int64, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, f := range s.files {
		if f.FolderID == folderID && f.Category != nil && *f.Category == category {
			f.Category = nil
			s.files[id] = f
		}
	}
	return nil
}

func (s *fileStore) ReassignCategory(ctx context.Context, folderID int64, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, f := range s.files {
		if f.FolderID == folderID && f.Category != nil && *f.Category == oldName {
			name := newName
			f.Category = &name
			s.files[id] = f
		}
	}
	return nil
}

func sortByUploadedAt(files []models.File) {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i].UploadedAt, files[j].UploadedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

// --- categories ---

type categoryStore MemStore

func (s *categoryStore) Create(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName, ok := s.categories[category.FolderID]
	if !ok {
		byName = make(map[string]models.Category)
		s.categories[category.FolderID] = byName
	}
	if _, exists := byName[category.Name]; exists {
		return store.ErrDuplicate
	}
	byName[category.Name] = *category
	return nil
}

func (s *categoryStore) Find(ctx context.Context, folderID int64, name string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[folderID][name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (s *categoryStore) ListByFolder(ctx context.Context, folderID int64) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Category
	for _, c := range s.categories[folderID] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *categoryStore) Rename(ctx context.Context, folderID int64, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName := s.categories[folderID]
	c, ok := byName[oldName]
	if !ok {
		return store.ErrNotFound
	}
	if _, exists := byName[newName]; exists {
		return store.ErrDuplicate
	}
	delete(byName, oldName)
	c.Name = newName
	byName[newName] = c
	return nil
}

func (s *categoryStore) Delete(ctx context.Context, folderID int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byName := s.categories[folderID]
	if _, ok := byName[name]; !ok {
		return store.ErrNotFound
	}
	delete(byName, name)
	return nil
}
