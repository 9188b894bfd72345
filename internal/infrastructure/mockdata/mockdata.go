package mockdata

import (
	"time"

	"github.com/hr-autoflow-api/internal/domain"
)

// Source is the fixed demo dataset behind the dashboard: access requests,
// systems, automation statuses, seed notifications and the badge catalog.
// It is the read-only external collaborator of every service; records are
// handed out as copies and never mutated in place.
type Source struct {
	requests      []domain.AccessRequest
	systems       []domain.System
	automations   []domain.AutomationStatus
	notifications []domain.Notification
	badges        []domain.Badge
}

// NewSource builds the dataset. Seed notification timestamps are derived
// from now so the feed always looks fresh on startup.
func NewSource(now time.Time) *Source {
	return &Source{
		requests:      demoRequests(),
		systems:       demoSystems(),
		automations:   demoAutomations(),
		notifications: demoNotifications(now),
		badges:        demoBadges(),
	}
}

func (s *Source) AccessRequests() []domain.AccessRequest {
	out := make([]domain.AccessRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Source) Systems() []domain.System {
	out := make([]domain.System, len(s.systems))
	copy(out, s.systems)
	return out
}

func (s *Source) Automations() []domain.AutomationStatus {
	out := make([]domain.AutomationStatus, len(s.automations))
	copy(out, s.automations)
	return out
}

func (s *Source) Notifications() []domain.Notification {
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Source) Badges() []domain.Badge {
	out := make([]domain.Badge, len(s.badges))
	copy(out, s.badges)
	return out
}

func demoRequests() []domain.AccessRequest {
	approvedAt := time.Date(2024, 6, 3, 14, 20, 0, 0, time.UTC)
	return []domain.AccessRequest{
		{
			RequestID:     "req-1",
			Type:          domain.RequestOnboarding,
			EmployeeName:  "João Santos",
			EmployeeEmail: "joao.santos@empresa.com",
			Department:    "Tecnologia",
			Position:      "Desenvolvedor Backend",
			StartDate:     "2024-06-10",
			Status:        domain.RequestInProgress,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 6, 3, 9, 12, 0, 0, time.UTC),
			ApprovedBy:    "Arthur Maciel",
			ApprovedAt:    &approvedAt,
			Systems:       []string{"Active Directory", "Office 365", "Slack", "GitHub"},
			Priority:      domain.PriorityHigh,
		},
		{
			RequestID:     "req-2",
			Type:          domain.RequestOnboarding,
			EmployeeName:  "Ana Oliveira",
			EmployeeEmail: "ana.oliveira@empresa.com",
			Department:    "Design",
			Position:      "Product Designer",
			StartDate:     "2024-06-17",
			Status:        domain.RequestPending,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 6, 4, 11, 45, 0, 0, time.UTC),
			Systems:       []string{"Office 365", "Figma", "Slack"},
			Priority:      domain.PriorityMedium,
		},
		{
			RequestID:     "req-3",
			Type:          domain.RequestOffboarding,
			EmployeeName:  "Carlos Pereira",
			EmployeeEmail: "carlos.pereira@empresa.com",
			Department:    "Financeiro",
			Position:      "Analista Financeiro",
			StartDate:     "2022-02-01",
			EndDate:       "2024-06-14",
			Status:        domain.RequestPending,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 6, 5, 8, 30, 0, 0, time.UTC),
			Systems:       []string{"Active Directory", "Office 365", "Jira"},
			Priority:      domain.PriorityHigh,
		},
		{
			RequestID:     "req-4",
			Type:          domain.RequestOnboarding,
			EmployeeName:  "Beatriz Lima",
			EmployeeEmail: "beatriz.lima@empresa.com",
			Department:    "Marketing",
			Position:      "Analista de Marketing",
			StartDate:     "2024-05-20",
			Status:        domain.RequestCompleted,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 5, 13, 10, 5, 0, 0, time.UTC),
			Systems:       []string{"Office 365", "Slack"},
		},
		{
			RequestID:     "req-5",
			Type:          domain.RequestOffboarding,
			EmployeeName:  "Rafael Costa",
			EmployeeEmail: "rafael.costa@empresa.com",
			Department:    "Tecnologia",
			Position:      "SRE",
			StartDate:     "2021-08-16",
			EndDate:       "2024-05-31",
			Status:        domain.RequestFailed,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 5, 27, 16, 40, 0, 0, time.UTC),
			Systems:       []string{"Active Directory", "AWS Console", "GitHub"},
			Notes:         "Revogação do AWS Console falhou - verificar manualmente",
			Priority:      domain.PriorityHigh,
		},
		{
			RequestID:     "req-6",
			Type:          domain.RequestOnboarding,
			EmployeeName:  "Fernanda Rocha",
			EmployeeEmail: "fernanda.rocha@empresa.com",
			Department:    "Recursos Humanos",
			Position:      "Analista de RH",
			StartDate:     "2024-05-06",
			Status:        domain.RequestCompleted,
			RequestedBy:   "Maria Santos",
			RequestedAt:   time.Date(2024, 4, 29, 9, 0, 0, 0, time.UTC),
			Systems:       []string{"Office 365", "Slack", "Confluence"},
		},
	}
}

func demoSystems() []domain.System {
	return []domain.System{
		{SystemID: "sys-1", Name: "Active Directory", Description: "Diretório corporativo de identidades", Category: "Identidade", Active: true, AutomationEnabled: true, LastUpdate: "2024-06-01", SuccessRate: 98.2},
		{SystemID: "sys-2", Name: "Office 365", Description: "Suite de produtividade e e-mail", Category: "Produtividade", Active: true, AutomationEnabled: true, LastUpdate: "2024-06-04", SuccessRate: 99.1},
		{SystemID: "sys-3", Name: "Slack", Description: "Mensageria corporativa", Category: "Comunicação", Active: true, AutomationEnabled: true, LastUpdate: "2024-05-28", SuccessRate: 91.7},
		{SystemID: "sys-4", Name: "GitHub", Description: "Repositórios de código", Category: "Desenvolvimento", Active: true, AutomationEnabled: true, LastUpdate: "2024-06-02", SuccessRate: 97.5},
		{SystemID: "sys-5", Name: "Jira", Description: "Gestão de projetos", Category: "Desenvolvimento", Active: true, AutomationEnabled: false, LastUpdate: "2024-05-30"},
		{SystemID: "sys-6", Name: "Confluence", Description: "Base de conhecimento", Category: "Documentação", Active: true, AutomationEnabled: false, LastUpdate: "2024-05-30"},
		{SystemID: "sys-7", Name: "Figma", Description: "Ferramenta de design colaborativo", Category: "Design", Active: true, AutomationEnabled: true, LastUpdate: "2024-06-03", SuccessRate: 95.0},
		{SystemID: "sys-8", Name: "AWS Console", Description: "Acesso à infraestrutura cloud", Category: "Infraestrutura", Active: false, AutomationEnabled: true, LastUpdate: "2024-05-25", SuccessRate: 88.4},
	}
}

func demoAutomations() []domain.AutomationStatus {
	return []domain.AutomationStatus{
		{AutomationID: "auto-1", Name: "Provisionamento de Contas", Running: true, LastRun: "2024-06-05T10:15:00Z", SuccessRate: 96.4, TotalExecutions: 312, FailedExecutions: 11},
		{AutomationID: "auto-2", Name: "Revogação de Acessos", Running: true, LastRun: "2024-06-05T09:40:00Z", SuccessRate: 92.8, TotalExecutions: 184, FailedExecutions: 13},
		{AutomationID: "auto-3", Name: "Sincronização de Grupos", Running: false, LastRun: "2024-06-04T23:00:00Z", SuccessRate: 99.0, TotalExecutions: 540, FailedExecutions: 5},
		{AutomationID: "auto-4", Name: "Notificação de Gestores", Running: true, LastRun: "2024-06-05T10:00:00Z", SuccessRate: 97.2, TotalExecutions: 428, FailedExecutions: 12},
	}
}

func demoNotifications(now time.Time) []domain.Notification {
	// Newest-first, matching store order.
	return []domain.Notification{
		{
			NotificationID: "notif-1",
			Title:          "Nova Solicitação",
			Message:        "Onboarding de Ana Oliveira aguardando aprovação",
			Type:           domain.NotifInfo,
			Priority:       domain.PriorityMedium,
			CreatedAt:      now.Add(-10 * time.Minute),
		},
		{
			NotificationID: "notif-2",
			Title:          "Falha na Automação",
			Message:        "Offboarding de Rafael Costa falhou na etapa AWS Console",
			Type:           domain.NotifError,
			Priority:       domain.PriorityHigh,
			ActionRequired: true,
			CreatedAt:      now.Add(-45 * time.Minute),
		},
		{
			NotificationID: "notif-3",
			Title:          "Onboarding Concluído",
			Message:        "Beatriz Lima teve todos os acessos provisionados",
			Type:           domain.NotifSuccess,
			Priority:       domain.PriorityLow,
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			NotificationID: "notif-4",
			Title:          "Manutenção Programada",
			Message:        "AWS Console ficará indisponível neste sábado",
			Type:           domain.NotifWarning,
			Priority:       domain.PriorityLow,
			Read:           true,
			CreatedAt:      now.Add(-26 * time.Hour),
		},
	}
}

func demoBadges() []domain.Badge {
	return []domain.Badge{
		{BadgeID: "b1", Name: "Primeiro Onboarding", Description: "Concluiu o primeiro onboarding automatizado", Icon: "🚀", Color: "blue"},
		{BadgeID: "b2", Name: "Automação Master", Description: "Executou 50 automações sem falhas", Icon: "🤖", Color: "purple"},
		{BadgeID: "b3", Name: "Velocista", Description: "Concluiu um onboarding em menos de uma hora", Icon: "⚡", Color: "yellow"},
		{BadgeID: "b4", Name: "Guardião", Description: "Revogou 100 acessos dentro do prazo", Icon: "🛡️", Color: "green"},
	}
}

// AvailableSystems is the fixed catalog offered on onboarding forms.
var AvailableSystems = []string{
	"Active Directory",
	"Office 365",
	"Slack",
	"GitHub",
	"Jira",
	"Confluence",
	"Figma",
	"AWS Console",
}
