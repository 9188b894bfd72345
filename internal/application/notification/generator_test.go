package notification

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/hr-autoflow-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick_CertainProbabilityAlwaysAppends(t *testing.T) {
	store := memory.NewNotificationStore(nil, 0, nil)
	g := NewGenerator(store, time.Minute, 1.0, rand.New(rand.NewSource(1)))

	for i := 0; i < 10; i++ {
		g.Tick()
	}

	list := store.List()
	require.Len(t, list, 10)
	titles := map[string]bool{}
	for _, tpl := range templates {
		titles[tpl.Title] = true
	}
	for _, n := range list {
		assert.True(t, titles[n.Title], "unexpected template %q", n.Title)
		assert.False(t, n.Read)
	}
}

func TestTick_ZeroProbabilityNeverAppends(t *testing.T) {
	store := memory.NewNotificationStore(nil, 0, nil)
	g := NewGenerator(store, time.Minute, 0.0, rand.New(rand.NewSource(1)))

	for i := 0; i < 10; i++ {
		g.Tick()
	}
	assert.Equal(t, 0, store.Len())
}

func TestStartStop_NoLeakedLoop(t *testing.T) {
	store := memory.NewNotificationStore(nil, 0, nil)
	g := NewGenerator(store, time.Hour, 1.0, rand.New(rand.NewSource(1)))

	g.Start(context.Background())
	g.Stop()

	select {
	case <-g.done:
	case <-time.After(time.Second):
		t.Fatal("generator loop did not exit after Stop")
	}

	// Stop again must not panic or block.
	g.Stop()
}

func TestStart_ContextCancellationStopsLoop(t *testing.T) {
	store := memory.NewNotificationStore(nil, 0, nil)
	g := NewGenerator(store, time.Hour, 1.0, rand.New(rand.NewSource(1)))

	ctx, cancel := context.WithCancel(context.Background())
	g.Start(ctx)
	cancel()

	select {
	case <-g.done:
	case <-time.After(time.Second):
		t.Fatal("generator loop did not exit after context cancellation")
	}
}

func TestGenerator_TickerAppendsOnInterval(t *testing.T) {
	store := memory.NewNotificationStore(nil, 0, nil)
	g := NewGenerator(store, 5*time.Millisecond, 1.0, rand.New(rand.NewSource(7)))

	g.Start(context.Background())
	defer g.Stop()

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if store.Len() > 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("ticker never appended a notification")
}
