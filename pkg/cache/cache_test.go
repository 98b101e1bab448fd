package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	store := New(DefaultTTL)

	_, ok := store.Get("relatorio")
	assert.False(t, ok)

	store.Set("relatorio", []string{"a", "b"})

	value, ok := store.Get("relatorio")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)

	// Set sobrescreve a entrada anterior
	store.Set("relatorio", "novo")
	value, _ = store.Get("relatorio")
	assert.Equal(t, "novo", value)
}

func TestStore_TTL(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base

	store := New(5 * time.Minute)
	store.now = func() time.Time { return current }

	store.SetWithTTL("aniversarios|Acme", 42)

	// 1 minuto depois: ainda válido
	current = base.Add(1 * time.Minute)
	value, ok := store.GetWithTTL("aniversarios|Acme")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	// 6 minutos depois: expirado, conta como miss
	current = base.Add(6 * time.Minute)
	_, ok = store.GetWithTTL("aniversarios|Acme")
	assert.False(t, ok)

	// A entrada vencida foi descartada na leitura
	assert.Equal(t, 0, store.Len())
}

func TestStore_EntriesWithoutTTLDoNotExpire(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base

	store := New(5 * time.Minute)
	store.now = func() time.Time { return current }

	store.Set("permanente", "x")

	current = base.Add(24 * time.Hour)
	value, ok := store.GetWithTTL("permanente")
	assert.True(t, ok)
	assert.Equal(t, "x", value)
}

func TestStore_Clear(t *testing.T) {
	store := New(DefaultTTL)
	store.Set("a", 1)
	store.Set("b", 2)

	store.ClearKey("a")
	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.True(t, ok)

	store.ClearAll()
	assert.Equal(t, 0, store.Len())
}

func TestStore_PurgeExpired(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base

	store := New(5 * time.Minute)
	store.now = func() time.Time { return current }

	store.SetWithTTL("vencida", 1)
	store.Set("sem_ttl", 2)

	current = base.Add(10 * time.Minute)
	store.SetWithTTL("recente", 3)

	removed := store.PurgeExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, store.Len())

	_, ok := store.GetWithTTL("recente")
	assert.True(t, ok)
	_, ok = store.Get("sem_ttl")
	assert.True(t, ok)
}
