// Package directory implements the Anti-Corruption Layer translators for
// the planning API's lookup resources: profiles, customers, and task types.
package directory

// ProfileDTO matches the downstream profiles schema.
type ProfileDTO struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

// CustomerDTO matches the downstream customers schema.
type CustomerDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskTypeDTO matches the downstream task_types schema.
type TaskTypeDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// ProfileListResponseDTO matches the downstream list response schema.
type ProfileListResponseDTO struct {
	Profiles []ProfileDTO `json:"profiles"`
	Count    int64        `json:"count"`
}

// CustomerListResponseDTO matches the downstream list response schema.
type CustomerListResponseDTO struct {
	Customers []CustomerDTO `json:"customers"`
	Count     int64         `json:"count"`
}

// TaskTypeListResponseDTO matches the downstream list response schema.
type TaskTypeListResponseDTO struct {
	TaskTypes []TaskTypeDTO `json:"task_types"`
	Count     int64         `json:"count"`
}
