package models

const (
	CategoryTodo       = "TO DO"
	CategoryInProgress = "In Progress"
	CategoryCompleted  = "Completed"
)

// ValidCategory reports whether s is one of the three board columns.
func ValidCategory(s string) bool {
	switch s {
	case CategoryTodo, CategoryInProgress, CategoryCompleted:
		return true
	}
	return false
}
