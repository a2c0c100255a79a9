package model

import "time"

// Todo represents a one-off actionable item with a binary completed state.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	FolderID  *string   `json:"folderId"`
	CreatedAt time.Time `json:"createdAt"`
}
