package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSweeperService_sweep(t *testing.T) {
	store := cache.New(time.Minute)
	store.Set("permanente", 1)
	store.SetWithTTL("expiravel", 2)

	cfg := &config.Config{
		CacheSweeper: config.CacheSweeper{
			CronSchedule: "*/10 * * * *",
			Enabled:      true,
		},
	}

	service := NewCacheSweeperService(store, cfg)

	// Nada expirado ainda
	service.sweep()
	assert.Equal(t, 2, store.Len())
	assert.False(t, service.lastSweepAt.IsZero())

	primeira := service.lastSweepAt
	service.sweep()
	assert.False(t, service.lastSweepAt.Before(primeira))
}

func TestCacheSweeperService_desabilitadoNaoAgenda(t *testing.T) {
	store := cache.New(time.Minute)

	cfg := &config.Config{
		CacheSweeper: config.CacheSweeper{
			CronSchedule: "*/10 * * * *",
			Enabled:      false,
		},
	}

	service := NewCacheSweeperService(store, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.False(t, service.scheduler.IsRunning())
}
