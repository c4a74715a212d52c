package schedule

// Visibility toggles whole entity kinds on or off for an aggregation pass.
// A hidden kind is not fetched at all.
type Visibility struct {
	TimeOff      bool
	Tasks        bool
	DryIce       bool
	GasCylinders bool
}

// AllVisible returns a visibility with every kind enabled.
func AllVisible() Visibility {
	return Visibility{TimeOff: true, Tasks: true, DryIce: true, GasCylinders: true}
}

// Shows reports whether the kind is enabled.
func (v Visibility) Shows(k Kind) bool {
	switch k {
	case KindTimeOff:
		return v.TimeOff
	case KindTask:
		return v.Tasks
	case KindDryIceOrder:
		return v.DryIce
	case KindGasCylinderOrder:
		return v.GasCylinders
	}
	return false
}

// Filter narrows aggregated items. Zero-valued fields match everything.
type Filter struct {
	UserID        string
	CustomerID    string
	LeaveType     LeaveType
	RequestStatus RequestStatus
	TaskStatus    TaskStatus
	TaskTypeID    string
	Priority      Priority
}

// Matches reports whether the item passes the filter. Rejected time-off
// requests are hidden unless a status filter explicitly asks for them.
func (f Filter) Matches(it Item) bool {
	switch it.Kind {
	case KindTimeOff:
		t := it.TimeOff
		if f.RequestStatus == "" && t.Status == RequestRejected {
			return false
		}
		if f.RequestStatus != "" && t.Status != f.RequestStatus {
			return false
		}
		if f.UserID != "" && t.UserID != f.UserID {
			return false
		}
		if f.LeaveType != "" && t.LeaveType != f.LeaveType {
			return false
		}
	case KindTask:
		t := it.Task
		if f.UserID != "" && t.AssigneeID != f.UserID {
			return false
		}
		if f.TaskStatus != "" && t.Status != f.TaskStatus {
			return false
		}
		if f.TaskTypeID != "" && t.TypeID != f.TaskTypeID {
			return false
		}
		if f.Priority != "" && t.Priority != f.Priority {
			return false
		}
	case KindDryIceOrder:
		if f.CustomerID != "" && it.DryIce.CustomerID != f.CustomerID {
			return false
		}
	case KindGasCylinderOrder:
		if f.CustomerID != "" && it.GasCylinder.CustomerID != f.CustomerID {
			return false
		}
	}
	return true
}

// Apply filters items in place-order, returning those that match.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}
