package reporting

import (
	"context"
	"time"

	"github.com/missiaspietro/pshot-report-api/pkg/log"
)

// retryWithBackoff executa fn até maxAttempts vezes, dobrando o delay base
// a cada tentativa. Usado apenas nas buscas de pesquisas, que dependem de
// uma tabela historicamente instável; os demais relatórios falham uma vez.
func retryWithBackoff(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	delay := baseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == maxAttempts {
			break
		}

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
			"next_delay":   delay.String(),
		}).Warn("Falha na busca de pesquisas, tentando novamente")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
	}

	return err
}
