package usecase

import (
	"context"
	"time"
)

type HealthView struct {
	Status  string `json:"status"`
	Backend bool   `json:"backend"`
	Uptime  string `json:"uptime"`
}

type HealthUseCase struct {
	Checker   HealthChecker
	StartedAt time.Time
}

func NewHealthUseCase(checker HealthChecker, startedAt time.Time) *HealthUseCase {
	return &HealthUseCase{Checker: checker, StartedAt: startedAt}
}

// Execute nunca falha: backend fora do ar vira status "degraded".
func (uc *HealthUseCase) Execute(ctx context.Context) HealthView {
	backend := uc.Checker.CheckHealth(ctx)
	status := "ok"
	if !backend {
		status = "degraded"
	}
	return HealthView{
		Status:  status,
		Backend: backend,
		Uptime:  time.Since(uc.StartedAt).Truncate(time.Second).String(),
	}
}
