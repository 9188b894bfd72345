package domain

import "time"

// Access request statuses.
const (
	RequestPending    = "pending"
	RequestApproved   = "approved"
	RequestRejected   = "rejected"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestFailed     = "failed"
)

// Access request types.
const (
	RequestOnboarding  = "onboarding"
	RequestOffboarding = "offboarding"
)

// AccessRequest is an onboarding/offboarding request record. Supplied by the
// demo data source and read-only from the service's point of view.
type AccessRequest struct {
	RequestID     string     `json:"id"`
	Type          string     `json:"type"`
	EmployeeName  string     `json:"employee_name"`
	EmployeeEmail string     `json:"employee_email"`
	Department    string     `json:"department"`
	Position      string     `json:"position"`
	StartDate     string     `json:"start_date"`
	EndDate       string     `json:"end_date,omitempty"`
	Status        string     `json:"status"`
	RequestedBy   string     `json:"requested_by"`
	RequestedAt   time.Time  `json:"requested_at"`
	ApprovedBy    string     `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	Systems       []string   `json:"systems"`
	Notes         string     `json:"notes,omitempty"`
	Priority      string     `json:"priority,omitempty"`
}
