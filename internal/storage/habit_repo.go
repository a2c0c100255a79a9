package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
)

// HabitRepo provides operations over the ordered habit collection.
//
// Operations referencing unknown ids are benign no-ops: mutation originates
// from trusted local state that derives ids from the current collection.
type HabitRepo struct {
	store *Store
}

// NewHabitRepo creates a new habit repository.
func NewHabitRepo(store *Store) *HabitRepo {
	return &HabitRepo{store: store}
}

// List returns the habit collection in display order.
func (r *HabitRepo) List() []model.Habit {
	return getList[model.Habit](r.store, model.KeyHabits)
}

// ReplaceAll overwrites the whole habit collection.
func (r *HabitRepo) ReplaceAll(habits []model.Habit) error {
	if habits == nil {
		habits = []model.Habit{}
	}
	return r.store.Set(model.KeyHabits, habits)
}

// Add creates a new habit from the user-supplied fields: a fresh unique id,
// creation timestamp, and empty completions are stamped, the habit is
// normalized and appended to the end of the collection.
func (r *HabitRepo) Add(h model.Habit) (model.Habit, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	h.Completions = map[string]bool{}
	h.Normalize()

	habits := append(r.List(), h)
	if err := r.ReplaceAll(habits); err != nil {
		return model.Habit{}, err
	}
	logging.DebugLog("habit added", logging.KeyHabitID, h.ID)
	return h, nil
}

// Edit replaces the habit matching h.ID in place, preserving collection
// order. Returns false when no habit has that id.
func (r *HabitRepo) Edit(h model.Habit) (bool, error) {
	habits := r.List()
	idx := findIndex(habits, habitID, h.ID)
	if idx == -1 {
		return false, nil
	}
	h.Normalize()
	habits[idx] = h
	return true, r.ReplaceAll(habits)
}

// Delete removes the habit with the given id. Unknown ids are a no-op.
func (r *HabitRepo) Delete(id string) error {
	habits := r.List()
	idx := findIndex(habits, habitID, id)
	if idx == -1 {
		return nil
	}
	habits = append(habits[:idx], habits[idx+1:]...)
	return r.ReplaceAll(habits)
}

// Reorder moves the dragged habit to the target habit's former position.
func (r *HabitRepo) Reorder(draggedID, targetID string) error {
	habits, moved := reorderByID(r.List(), habitID, draggedID, targetID)
	if !moved {
		return nil
	}
	return r.ReplaceAll(habits)
}

// GetByID returns the habit with the given id.
func (r *HabitRepo) GetByID(id string) (model.Habit, bool) {
	habits := r.List()
	idx := findIndex(habits, habitID, id)
	if idx == -1 {
		return model.Habit{}, false
	}
	return habits[idx], true
}

// SetCompletions replaces the completions mapping of the habit with the given
// id. Used by the completion toggle, which computes the updated mapping
// through the streak engine.
func (r *HabitRepo) SetCompletions(id string, completions map[string]bool) error {
	habits := r.List()
	idx := findIndex(habits, habitID, id)
	if idx == -1 {
		return nil
	}
	habits[idx].Completions = completions
	return r.ReplaceAll(habits)
}

// ClearFolderRefs nulls the folder reference on every habit pointing at the
// given folder. Called when a habit folder is deleted.
func (r *HabitRepo) ClearFolderRefs(folderID string) error {
	habits := r.List()
	changed := false
	for i := range habits {
		if habits[i].FolderID != nil && *habits[i].FolderID == folderID {
			habits[i].FolderID = nil
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.ReplaceAll(habits)
}

func habitID(h model.Habit) string { return h.ID }
