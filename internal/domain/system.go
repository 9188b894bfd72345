package domain

// System is a corporate system the automation can provision access to.
type System struct {
	SystemID          string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Active            bool    `json:"is_active"`
	AutomationEnabled bool    `json:"automation_enabled"`
	LastUpdate        string  `json:"last_update,omitempty"`
	SuccessRate       float64 `json:"success_rate,omitempty"`
}

// AutomationStatus describes one automation flow's execution health.
type AutomationStatus struct {
	AutomationID     string  `json:"id"`
	Name             string  `json:"name"`
	Running          bool    `json:"is_running"`
	LastRun          string  `json:"last_run,omitempty"`
	SuccessRate      float64 `json:"success_rate"`
	TotalExecutions  int     `json:"total_executions"`
	FailedExecutions int     `json:"failed_executions"`
}
