package system

import (
	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/infrastructure/mockdata"
)

// DataSource supplies the read-only system and automation records.
type DataSource interface {
	Systems() []domain.System
	Automations() []domain.AutomationStatus
}

type Service interface {
	List() []domain.System
	Automations() []domain.AutomationStatus
	RunningCount() int
	// Catalog is the fixed list of system names offered on onboarding forms.
	Catalog() []string
}

type service struct {
	source DataSource
}

func NewService(source DataSource) Service {
	return &service{source: source}
}

func (s *service) List() []domain.System {
	return s.source.Systems()
}

func (s *service) Automations() []domain.AutomationStatus {
	return s.source.Automations()
}

func (s *service) RunningCount() int {
	count := 0
	for _, a := range s.source.Automations() {
		if a.Running {
			count++
		}
	}
	return count
}

func (s *service) Catalog() []string {
	out := make([]string, len(mockdata.AvailableSystems))
	copy(out, mockdata.AvailableSystems)
	return out
}
