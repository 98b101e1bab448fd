package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/pkg/cache"
	"github.com/sirupsen/logrus"
)

// CacheSweeperService agenda a varredura periódica de entradas expiradas do
// cache de relatórios. A expiração já é checada na leitura; a varredura só
// devolve memória de chaves que ninguém volta a consultar.
type CacheSweeperService struct {
	scheduler *gocron.Scheduler
	store     *cache.Store
	cfg       config.CacheSweeper

	lastSweepAt time.Time
}

func NewCacheSweeperService(store *cache.Store, appConfig *config.Config) *CacheSweeperService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CacheSweeper.CronSchedule,
		"enabled":       appConfig.CacheSweeper.Enabled,
	}).Info("Configuração da varredura de cache carregada")

	return &CacheSweeperService{
		scheduler: scheduler,
		store:     store,
		cfg:       appConfig.CacheSweeper,
	}
}

// Start inicia o agendador
func (s *CacheSweeperService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Varredura de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de varredura de cache")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura de cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheSweeperService) sweep() {
	startTime := time.Now()

	removed := s.store.PurgeExpired()

	fields := logrus.Fields{
		"removed":     removed,
		"remaining":   s.store.Len(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}
	if !s.lastSweepAt.IsZero() {
		fields["since_last_sweep"] = startTime.Sub(s.lastSweepAt).String()
	}
	s.lastSweepAt = startTime

	logrus.WithFields(fields).Info("Varredura de cache concluída")
}
