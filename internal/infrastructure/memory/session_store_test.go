package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dhaliwal-pos/internal/domain/entity"
	"github.com/jhoicas/dhaliwal-pos/pkg/logger"
)

func TestSessionStore_GetOrCreateReutiliza(t *testing.T) {
	store := NewSessionStore()

	a := store.GetOrCreate("s1")
	b := store.GetOrCreate("s1")
	c := store.GetOrCreate("s2")

	assert.Same(t, a, b, "el mismo id devuelve la misma sesión")
	assert.NotSame(t, a, c, "cada id tiene su propia sesión")
	assert.Equal(t, 2, store.Len())
}

func TestSessionStore_SesionesAisladas(t *testing.T) {
	store := NewSessionStore()
	require.NoError(t, store.GetOrCreate("s1").AddItem("Dal", decimal.NewFromInt(120), entity.SizeFull))

	assert.Empty(t, store.GetOrCreate("s2").Snapshot().Items)
	assert.Len(t, store.GetOrCreate("s1").Snapshot().Items, 1)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	store.GetOrCreate("s1")
	store.Delete("s1")
	store.Delete("inexistente")

	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	clock := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.now = func() time.Time { return clock }

	store.GetOrCreate("vieja")
	clock = clock.Add(time.Hour)
	store.GetOrCreate("nueva")

	removed := store.Sweep(clock.Add(-30 * time.Minute))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_RunJanitorTerminaConContexto(t *testing.T) {
	store := NewSessionStore()
	store.GetOrCreate("s1")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.RunJanitor(ctx, time.Millisecond, 0, logger.Nop())
		close(done)
	}()

	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("el janitor no terminó al cancelar el contexto")
	}
}
