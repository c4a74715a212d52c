package directory

import "github.com/coldflow/planboard/internal/domain/schedule"

// ToDomainProfileList converts a downstream ProfileListResponseDTO to a
// slice of domain Profile entries.
func ToDomainProfileList(dto ProfileListResponseDTO) []schedule.Profile {
	profiles := make([]schedule.Profile, len(dto.Profiles))
	for i, p := range dto.Profiles {
		profiles[i] = schedule.Profile{ID: p.ID, FullName: p.FullName, Email: p.Email}
	}
	return profiles
}

// ToDomainCustomerList converts a downstream CustomerListResponseDTO to a
// slice of domain Customer entries.
func ToDomainCustomerList(dto CustomerListResponseDTO) []schedule.Customer {
	customers := make([]schedule.Customer, len(dto.Customers))
	for i, c := range dto.Customers {
		customers[i] = schedule.Customer{ID: c.ID, Name: c.Name}
	}
	return customers
}

// ToDomainTaskTypeList converts a downstream TaskTypeListResponseDTO to a
// slice of domain TaskType entries.
func ToDomainTaskTypeList(dto TaskTypeListResponseDTO) []schedule.TaskType {
	taskTypes := make([]schedule.TaskType, len(dto.TaskTypes))
	for i, tt := range dto.TaskTypes {
		taskTypes[i] = schedule.TaskType{ID: tt.ID, Name: tt.Name, Color: tt.Color}
	}
	return taskTypes
}
