package request

import (
	"fmt"

	"github.com/hr-autoflow-api/internal/domain"
)

// DataSource supplies the read-only demo records the service filters over.
// The service never mutates what it receives.
type DataSource interface {
	AccessRequests() []domain.AccessRequest
	Systems() []domain.System
	Automations() []domain.AutomationStatus
}

type Service interface {
	// List narrows by status and/or type; empty selectors match everything.
	List(status, requestType string) ([]domain.AccessRequest, error)
	// Recent returns the first n requests as supplied by the source.
	Recent(n int) []domain.AccessRequest
	Stats() domain.DashboardStats
	HRStats() domain.HRStats
}

type service struct {
	source DataSource
}

func NewService(source DataSource) Service {
	return &service{source: source}
}

func (s *service) List(status, requestType string) ([]domain.AccessRequest, error) {
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, domain.ErrBadRequest)
	}
	if requestType != "" && requestType != domain.RequestOnboarding && requestType != domain.RequestOffboarding {
		return nil, fmt.Errorf("unknown type %q: %w", requestType, domain.ErrBadRequest)
	}

	all := s.source.AccessRequests()
	out := all[:0]
	for _, r := range all {
		if status != "" && r.Status != status {
			continue
		}
		if requestType != "" && r.Type != requestType {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *service) Recent(n int) []domain.AccessRequest {
	all := s.source.AccessRequests()
	if n <= 0 || n > len(all) {
		n = len(all)
	}
	return all[:n]
}

func (s *service) Stats() domain.DashboardStats {
	requests := s.source.AccessRequests()
	stats := domain.DashboardStats{TotalRequests: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case domain.RequestPending:
			stats.PendingRequests++
		case domain.RequestCompleted:
			stats.CompletedRequests++
		case domain.RequestFailed:
			stats.FailedRequests++
		}
		switch r.Type {
		case domain.RequestOnboarding:
			stats.OnboardingRequests++
		case domain.RequestOffboarding:
			stats.OffboardingRequests++
		}
	}

	for _, sys := range s.source.Systems() {
		stats.TotalSystems++
		if sys.Active {
			stats.SystemsOnline++
		}
	}

	automations := s.source.Automations()
	if len(automations) > 0 {
		var sum float64
		for _, a := range automations {
			sum += a.SuccessRate
		}
		stats.AutomationSuccessRate = sum / float64(len(automations))
	}
	return stats
}

func (s *service) HRStats() domain.HRStats {
	var stats domain.HRStats
	for _, r := range s.source.AccessRequests() {
		switch {
		case r.Type == domain.RequestOnboarding && r.Status == domain.RequestPending:
			stats.PendingOnboarding++
		case r.Type == domain.RequestOffboarding && r.Status == domain.RequestPending:
			stats.PendingOffboarding++
		}
		if r.Status == domain.RequestCompleted {
			stats.Completed++
		}
		if r.Status == domain.RequestFailed {
			stats.NeedsAttention++
		}
	}
	return stats
}

func validStatus(status string) bool {
	switch status {
	case domain.RequestPending, domain.RequestApproved, domain.RequestRejected,
		domain.RequestInProgress, domain.RequestCompleted, domain.RequestFailed:
		return true
	}
	return false
}
