package model

// Folder is a named grouping bucket for habits or tasks. Habit folders and
// task folders live in disjoint namespaces and are never cross-referenced.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
