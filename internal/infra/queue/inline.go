package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// InlineQueue roda o job numa goroutine do próprio processo. Usada quando
// AMQP_URL não está configurada (desenvolvimento local).
type InlineQueue struct {
	Processor JobProcessor
	Logger    *zap.Logger

	wg sync.WaitGroup
}

func NewInlineQueue(processor JobProcessor, logger *zap.Logger) *InlineQueue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InlineQueue{Processor: processor, Logger: logger}
}

func (q *InlineQueue) PublishMassFollowup(ctx context.Context, job entity.MassFollowupJob) error {
	// o job sobrevive ao fim da requisição que o criou
	jobCtx := context.WithoutCancel(ctx)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := q.Processor.Execute(jobCtx, job); err != nil {
			q.Logger.Error("❌ Job inline falhou", zap.String("job_id", job.ID), zap.Error(err))
		}
	}()
	return nil
}

// Wait bloqueia até os jobs em andamento terminarem (shutdown).
func (q *InlineQueue) Wait() {
	q.wg.Wait()
}
