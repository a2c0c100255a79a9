package storage

import (
	"github.com/google/uuid"

	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
)

// RefClearer clears folder references on a dependent collection. Habit and
// todo repositories implement it so a folder delete can cascade.
type RefClearer interface {
	ClearFolderRefs(folderID string) error
}

// FolderRepo provides operations over one of the two folder namespaces.
// Folders are weak grouping buckets: deleting one clears the reference on
// dependents, it never deletes them.
type FolderRepo struct {
	store      *Store
	key        string
	dependents RefClearer
}

// NewTaskFolderRepo creates the repository for the task folder namespace.
func NewTaskFolderRepo(store *Store, todos *TodoRepo) *FolderRepo {
	return &FolderRepo{store: store, key: model.KeyTaskFolders, dependents: todos}
}

// NewHabitFolderRepo creates the repository for the habit folder namespace.
func NewHabitFolderRepo(store *Store, habits *HabitRepo) *FolderRepo {
	return &FolderRepo{store: store, key: model.KeyHabitFolders, dependents: habits}
}

// Key returns the store key of this namespace.
func (r *FolderRepo) Key() string {
	return r.key
}

// List returns the folder collection in display order.
func (r *FolderRepo) List() []model.Folder {
	return getList[model.Folder](r.store, r.key)
}

// ReplaceAll overwrites the whole folder collection.
func (r *FolderRepo) ReplaceAll(folders []model.Folder) error {
	if folders == nil {
		folders = []model.Folder{}
	}
	return r.store.Set(r.key, folders)
}

// Add creates a new folder with a fresh unique id, appended to the end.
func (r *FolderRepo) Add(f model.Folder) (model.Folder, error) {
	f.ID = uuid.NewString()
	folders := append(r.List(), f)
	if err := r.ReplaceAll(folders); err != nil {
		return model.Folder{}, err
	}
	logging.DebugLog("folder added", logging.KeyFolderID, f.ID, logging.KeyStoreKey, r.key)
	return f, nil
}

// Edit replaces the folder matching f.ID in place. Returns false when no
// folder has that id.
func (r *FolderRepo) Edit(f model.Folder) (bool, error) {
	folders := r.List()
	idx := findIndex(folders, folderID, f.ID)
	if idx == -1 {
		return false, nil
	}
	folders[idx] = f
	return true, r.ReplaceAll(folders)
}

// Delete removes the folder and clears the folder reference on every
// dependent entity that pointed to it. Both collections are persisted.
// Unknown ids are a no-op.
func (r *FolderRepo) Delete(id string) error {
	folders := r.List()
	idx := findIndex(folders, folderID, id)
	if idx == -1 {
		return nil
	}
	folders = append(folders[:idx], folders[idx+1:]...)
	if err := r.ReplaceAll(folders); err != nil {
		return err
	}
	return r.dependents.ClearFolderRefs(id)
}

// GetByID returns the folder with the given id.
func (r *FolderRepo) GetByID(id string) (model.Folder, bool) {
	folders := r.List()
	idx := findIndex(folders, folderID, id)
	if idx == -1 {
		return model.Folder{}, false
	}
	return folders[idx], true
}

func folderID(f model.Folder) string { return f.ID }
