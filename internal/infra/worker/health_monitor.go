package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

// HealthMonitor consulta o backend de analytics a cada intervalo e publica
// o resultado (gauge analytics_backend_up).
type HealthMonitor struct {
	checker      HealthChecker
	report       func(up bool)
	logger       *zap.Logger
	tickInterval time.Duration

	lastUp *bool
}

func NewHealthMonitor(checker HealthChecker, report func(up bool), interval time.Duration, logger *zap.Logger) *HealthMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &HealthMonitor{
		checker:      checker,
		report:       report,
		logger:       logger,
		tickInterval: interval,
	}
}

func (w *HealthMonitor) Start(ctx context.Context) {
	w.logger.Info("🩺 Health monitor iniciado", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.check(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("⚠️ Health monitor encerrado")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

// check só loga quando o estado muda.
func (w *HealthMonitor) check(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, w.tickInterval)
	defer cancel()

	up := w.checker.CheckHealth(checkCtx)
	if w.report != nil {
		w.report(up)
	}

	if w.lastUp != nil && *w.lastUp == up {
		return
	}
	if up {
		w.logger.Info("✅ Backend de analytics respondendo")
	} else {
		w.logger.Warn("❌ Backend de analytics fora do ar")
	}
	w.lastUp = &up
}
