package schedule

// Profile is a directory entry for a user referenced by id from time-off
// requests and tasks.
type Profile struct {
	ID       string
	FullName string
	Email    string
}

// Customer is a directory entry referenced by id from orders.
type Customer struct {
	ID   string
	Name string
}

// TaskType is a directory entry carrying the display name and color for a
// task type id.
type TaskType struct {
	ID    string
	Name  string
	Color string
}
