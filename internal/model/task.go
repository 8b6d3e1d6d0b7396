package model

// Task represents a Zoho CRM task as surfaced by the bridge. The bridge keeps
// no authoritative copy: every Task is a live reshape of an upstream record.
type Task struct {
	ID        string // Zoho record id
	Title     string // Zoho "Subject"
	Status    string // Zoho "Status"
	Priority  string // Zoho "Priority"
	Notes     string // Zoho "Description"
	DueDate   string // Zoho "Due_Date", YYYY-MM-DD
	Assignee  string // Zoho "Owner" display name
	CreatedAt string // Zoho "Created_Time", RFC3339 string passed through as-is
	UpdatedAt string // Zoho "Modified_Time", RFC3339 string passed through as-is
}

// Task statuses as Zoho CRM defines them.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task priorities as Zoho CRM defines them.
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityHigh   = "High"
)

// ValidStatus reports whether s is one of the three Zoho task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is one of the three Zoho task priorities.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	}
	return false
}
