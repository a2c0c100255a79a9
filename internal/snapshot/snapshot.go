// Package snapshot serializes the full application state for export, backup
// and import. The JSON shape mirrors the persisted collections exactly so
// payloads round-trip with the original export files.
package snapshot

import (
	"encoding/json"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/logging"
	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/storage"
)

// Snapshot is the full-state payload: all collections plus the user profile.
type Snapshot struct {
	Habits       []model.Habit  `json:"habits"`
	Todos        []model.Todo   `json:"todos"`
	TaskFolders  []model.Folder `json:"taskFolders"`
	HabitFolders []model.Folder `json:"habitFolders"`
	User         *model.User    `json:"user"`
}

// Incoming is a parsed import payload. Fields are pointers so an absent key
// can be told apart from an empty collection: absent keys leave the existing
// collection untouched.
type Incoming struct {
	Habits       *[]model.Habit  `json:"habits"`
	Todos        *[]model.Todo   `json:"todos"`
	TaskFolders  *[]model.Folder `json:"taskFolders"`
	HabitFolders *[]model.Folder `json:"habitFolders"`
	User         *model.User     `json:"user"`
}

// Service builds and applies snapshots over the repositories.
type Service struct {
	Habits       *storage.HabitRepo
	Todos        *storage.TodoRepo
	TaskFolders  *storage.FolderRepo
	HabitFolders *storage.FolderRepo
	Users        *storage.UserRepo
}

// NewService creates a snapshot service.
func NewService(habits *storage.HabitRepo, todos *storage.TodoRepo, taskFolders, habitFolders *storage.FolderRepo, users *storage.UserRepo) *Service {
	return &Service{
		Habits:       habits,
		Todos:        todos,
		TaskFolders:  taskFolders,
		HabitFolders: habitFolders,
		Users:        users,
	}
}

// Build collects the current state into a snapshot value.
func (s *Service) Build() Snapshot {
	return Snapshot{
		Habits:       s.Habits.List(),
		Todos:        s.Todos.List(),
		TaskFolders:  s.TaskFolders.List(),
		HabitFolders: s.HabitFolders.List(),
		User:         s.Users.Get(),
	}
}

// Export serializes the full state as one JSON document.
func (s *Service) Export() ([]byte, error) {
	return json.MarshalIndent(s.Build(), "", "  ")
}

// ExportHabits serializes the habit collection alone as a JSON array.
func (s *Service) ExportHabits() ([]byte, error) {
	return json.MarshalIndent(s.Habits.List(), "", "  ")
}

// Parse decodes an import payload. A payload that is not valid JSON yields
// ErrInvalidSnapshot and no state is touched.
func Parse(data []byte) (*Incoming, error) {
	var in Incoming
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidSnapshot, err.Error())
	}
	return &in, nil
}

// Import parses the payload and replaces each collection present in it,
// leaving absent keys untouched. Parse failure leaves all state unchanged.
func (s *Service) Import(data []byte) error {
	in, err := Parse(data)
	if err != nil {
		return err
	}
	return s.Apply(in)
}

// Apply replaces every collection the incoming payload carries.
func (s *Service) Apply(in *Incoming) error {
	if in.Habits != nil {
		if err := s.Habits.ReplaceAll(*in.Habits); err != nil {
			return err
		}
	}
	if in.Todos != nil {
		if err := s.Todos.ReplaceAll(*in.Todos); err != nil {
			return err
		}
	}
	if in.TaskFolders != nil {
		if err := s.TaskFolders.ReplaceAll(*in.TaskFolders); err != nil {
			return err
		}
	}
	if in.HabitFolders != nil {
		if err := s.HabitFolders.ReplaceAll(*in.HabitFolders); err != nil {
			return err
		}
	}
	if in.User != nil {
		if err := s.Users.Set(*in.User); err != nil {
			return err
		}
	}
	logging.DebugLog("snapshot applied")
	return nil
}
