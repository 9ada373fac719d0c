package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// JobProcessor executa um envio em massa (usecase.MassFollowupProcessor).
type JobProcessor interface {
	Execute(ctx context.Context, job entity.MassFollowupJob) error
}

type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel   Consumer
	Processor JobProcessor
	Logger    *zap.Logger
}

func NewWorker(ch Consumer, processor JobProcessor, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Channel:   ch,
		Processor: processor,
		Logger:    logger,
	}
}

// Start consome até o contexto acabar ou o canal fechar. Ack manual.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info("👷 Worker aguardando na fila", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				w.Logger.Warn("⚠️ Canal de consumo fechado")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var job entity.MassFollowupJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		w.Logger.Error("❌ [WORKER] JSON inválido, mandando para DLQ", zap.Error(err))
		d.Nack(false, false)
		return
	}

	w.Logger.Info("📥 [WORKER] Job de follow-up recebido",
		zap.String("job_id", job.ID),
		zap.String("segment", string(job.Segment)),
	)

	if err := w.Processor.Execute(ctx, job); err != nil {
		w.Logger.Error("❌ [WORKER] Erro ao processar job", zap.String("job_id", job.ID), zap.Error(err))
		// sem requeue: o envio não é idempotente no backend
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}
