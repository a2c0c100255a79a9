package output

import (
	"time"

	"github.com/habitta-app/habitta/internal/model"
	"github.com/habitta-app/habitta/internal/stats"
	"github.com/habitta-app/habitta/internal/streak"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// HabitOutput represents a habit in JSON output.
type HabitOutput struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Color         string   `json:"color,omitempty"`
	FrequencyType string   `json:"frequency_type"`
	FrequencyDays []int    `json:"frequency_days,omitempty"`
	Reminders     []string `json:"reminders,omitempty"`
	TargetStreak  *int     `json:"target_streak,omitempty"`
	FolderID      *string  `json:"folder_id,omitempty"`
	CreatedAt     string   `json:"created_at"`
	CurrentStreak int      `json:"current_streak"`
	BestStreak    int      `json:"best_streak"`
	DoneToday     bool     `json:"done_today"`
}

// NewHabitOutput creates a HabitOutput with its streaks resolved.
func NewHabitOutput(h *model.Habit, result streak.Result, now time.Time) *HabitOutput {
	return &HabitOutput{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		Icon:          h.Icon,
		Color:         h.Color,
		FrequencyType: h.FrequencyType,
		FrequencyDays: h.FrequencyDays,
		Reminders:     h.Reminders,
		TargetStreak:  h.TargetStreak,
		FolderID:      h.FolderID,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
		CurrentStreak: result.Current,
		BestStreak:    result.Best,
		DoneToday:     h.CompletedOn(streak.DayString(now)),
	}
}

// HabitsResponse represents the habit list output in JSON.
type HabitsResponse struct {
	Habits []*HabitOutput `json:"habits"`
	Count  int            `json:"count"`
}

// TodoOutput represents a todo in JSON output.
type TodoOutput struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	FolderID  *string `json:"folder_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// NewTodoOutput creates a TodoOutput from a Todo.
func NewTodoOutput(t *model.Todo) *TodoOutput {
	return &TodoOutput{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		FolderID:  t.FolderID,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// TodosResponse represents the todo list output in JSON.
type TodosResponse struct {
	Todos []*TodoOutput `json:"todos"`
	Count int           `json:"count"`
}

// FolderOutput represents a folder in JSON output.
type FolderOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// NewFolderOutput creates a FolderOutput from a Folder.
func NewFolderOutput(f *model.Folder) *FolderOutput {
	return &FolderOutput{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
	}
}

// StatsResponse represents per-habit statistics output in JSON.
type StatsResponse struct {
	HabitID        string             `json:"habit_id"`
	Name           string             `json:"name"`
	CurrentStreak  int                `json:"current_streak"`
	BestStreak     int                `json:"best_streak"`
	Week           []stats.DayStatus  `json:"week"`
	Overall        []stats.WeekBucket `json:"overall"`
	TargetProgress float64            `json:"target_progress"`
}

// AchievementsResponse represents the achievements output in JSON.
type AchievementsResponse struct {
	Summary stats.Summary      `json:"summary"`
	Habits  []stats.HabitAwards `json:"habits"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}

// PrintHabits outputs the habit list in JSON format.
func (j *JSONFormatter) PrintHabits(habits []*HabitOutput) error {
	return j.JSON(HabitsResponse{Habits: habits, Count: len(habits)})
}

// PrintTodos outputs the todo list in JSON format.
func (j *JSONFormatter) PrintTodos(todos []*TodoOutput) error {
	return j.JSON(TodosResponse{Todos: todos, Count: len(todos)})
}
