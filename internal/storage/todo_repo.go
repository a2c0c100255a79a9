package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
)

// TodoRepo provides operations over the ordered todo collection.
type TodoRepo struct {
	store *Store
}

// NewTodoRepo creates a new todo repository.
func NewTodoRepo(store *Store) *TodoRepo {
	return &TodoRepo{store: store}
}

// List returns the todo collection in display order.
func (r *TodoRepo) List() []model.Todo {
	return getList[model.Todo](r.store, model.KeyTodos)
}

// ReplaceAll overwrites the whole todo collection.
func (r *TodoRepo) ReplaceAll(todos []model.Todo) error {
	if todos == nil {
		todos = []model.Todo{}
	}
	return r.store.Set(model.KeyTodos, todos)
}

// Add creates a new todo: fresh unique id, creation timestamp, not completed,
// appended to the end of the collection.
func (r *TodoRepo) Add(t model.Todo) (model.Todo, error) {
	t.ID = uuid.NewString()
	t.Completed = false
	t.CreatedAt = time.Now()

	todos := append(r.List(), t)
	if err := r.ReplaceAll(todos); err != nil {
		return model.Todo{}, err
	}
	logging.DebugLog("todo added", logging.KeyTodoID, t.ID)
	return t, nil
}

// Edit replaces the todo matching t.ID in place, preserving order. Returns
// false when no todo has that id.
func (r *TodoRepo) Edit(t model.Todo) (bool, error) {
	todos := r.List()
	idx := findIndex(todos, todoID, t.ID)
	if idx == -1 {
		return false, nil
	}
	todos[idx] = t
	return true, r.ReplaceAll(todos)
}

// Delete removes the todo with the given id. Unknown ids are a no-op.
func (r *TodoRepo) Delete(id string) error {
	todos := r.List()
	idx := findIndex(todos, todoID, id)
	if idx == -1 {
		return nil
	}
	todos = append(todos[:idx], todos[idx+1:]...)
	return r.ReplaceAll(todos)
}

// Reorder moves the dragged todo to the target todo's former position.
func (r *TodoRepo) Reorder(draggedID, targetID string) error {
	todos, moved := reorderByID(r.List(), todoID, draggedID, targetID)
	if !moved {
		return nil
	}
	return r.ReplaceAll(todos)
}

// GetByID returns the todo with the given id.
func (r *TodoRepo) GetByID(id string) (model.Todo, bool) {
	todos := r.List()
	idx := findIndex(todos, todoID, id)
	if idx == -1 {
		return model.Todo{}, false
	}
	return todos[idx], true
}

// Toggle flips the completed flag of the todo with the given id and returns
// the updated todo. Unknown ids are a no-op.
func (r *TodoRepo) Toggle(id string) (model.Todo, error) {
	todos := r.List()
	idx := findIndex(todos, todoID, id)
	if idx == -1 {
		return model.Todo{}, nil
	}
	todos[idx].Completed = !todos[idx].Completed
	return todos[idx], r.ReplaceAll(todos)
}

// ClearFolderRefs nulls the folder reference on every todo pointing at the
// given folder. Called when a task folder is deleted.
func (r *TodoRepo) ClearFolderRefs(folderID string) error {
	todos := r.List()
	changed := false
	for i := range todos {
		if todos[i].FolderID != nil && *todos[i].FolderID == folderID {
			todos[i].FolderID = nil
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.ReplaceAll(todos)
}

func todoID(t model.Todo) string { return t.ID }
