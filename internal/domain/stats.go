package domain

// DashboardStats is the aggregate view rendered on the main dashboard.
type DashboardStats struct {
	TotalRequests         int     `json:"total_requests"`
	PendingRequests       int     `json:"pending_requests"`
	CompletedRequests     int     `json:"completed_requests"`
	OnboardingRequests    int     `json:"onboarding_requests"`
	OffboardingRequests   int     `json:"offboarding_requests"`
	FailedRequests        int     `json:"failed_requests"`
	AutomationSuccessRate float64 `json:"automation_success_rate"`
	SystemsOnline         int     `json:"systems_online"`
	TotalSystems          int     `json:"total_systems"`
}

// HRStats is the reduced aggregate shown on the HR dashboard.
type HRStats struct {
	PendingOnboarding  int `json:"pending_onboarding"`
	PendingOffboarding int `json:"pending_offboarding"`
	Completed          int `json:"completed"`
	NeedsAttention     int `json:"needs_attention"`
}
