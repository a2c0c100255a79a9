package storage

// findIndex returns the index of the item whose id matches, or -1.
func findIndex[T any](items []T, idOf func(T) string, id string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// reorderByID moves the dragged item to occupy the target's former position
// (remove then insert at the target's index). All other items keep their
// relative order. Returns false without modifying the slice when either id is
// unknown or they are equal.
func reorderByID[T any](items []T, idOf func(T) string, draggedID, targetID string) ([]T, bool) {
	draggedIdx := findIndex(items, idOf, draggedID)
	targetIdx := findIndex(items, idOf, targetID)
	if draggedIdx == -1 || targetIdx == -1 || draggedIdx == targetIdx {
		return items, false
	}

	out := make([]T, 0, len(items))
	out = append(out, items[:draggedIdx]...)
	out = append(out, items[draggedIdx+1:]...)

	dragged := items[draggedIdx]
	out = append(out[:targetIdx], append([]T{dragged}, out[targetIdx:]...)...)
	return out, true
}
