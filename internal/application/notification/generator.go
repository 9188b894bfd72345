package notification

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/hr-autoflow-api/internal/domain"
)

// templates is the fixed pool the generator draws from, mirroring the demo
// feed: finished automations, system updates, integration failures.
var templates = []domain.NotificationDraft{
	{
		Title:    "Automação Concluída",
		Message:  "Onboarding de João Santos foi finalizado com sucesso",
		Type:     domain.NotifSuccess,
		Priority: domain.PriorityMedium,
	},
	{
		Title:    "Sistema Atualizado",
		Message:  "Office 365 foi atualizado para versão mais recente",
		Type:     domain.NotifInfo,
		Priority: domain.PriorityLow,
	},
	{
		Title:          "Falha Detectada",
		Message:        "Erro na integração com Slack - verificar logs",
		Type:           domain.NotifError,
		Priority:       domain.PriorityHigh,
		ActionRequired: true,
	},
}

// Generator probabilistically appends a canned notification on a fixed
// interval. It owns one goroutine for the lifetime of the owning store and
// must be stopped on teardown so the ticker does not leak.
type Generator struct {
	store       Store
	interval    time.Duration
	probability float64
	rng         *rand.Rand

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewGenerator builds a generator. rng may be nil for a time-seeded source;
// tests pass a fixed-seed source and drive Tick directly.
func NewGenerator(store Store, interval time.Duration, probability float64, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		store:       store,
		interval:    interval,
		probability: probability,
		rng:         rng,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the background loop. It returns immediately; the loop ends
// when ctx is cancelled or Stop is called.
func (g *Generator) Start(ctx context.Context) {
	go g.loop(ctx)
}

// Stop ends the background loop and waits for it to exit. Safe to call more
// than once and safe even if Start was never called.
func (g *Generator) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
	select {
	case <-g.done:
	case <-time.After(time.Second):
	}
}

func (g *Generator) loop(ctx context.Context) {
	defer close(g.done)
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-g.stop:
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Tick performs one generation round: a single probability draw and, on a
// hit, one randomly selected template appended to the store. The loop calls
// this every interval; tests call it directly with a seeded source.
func (g *Generator) Tick() {
	if g.rng.Float64() >= g.probability {
		return
	}
	g.store.Add(templates[g.rng.Intn(len(templates))])
}
