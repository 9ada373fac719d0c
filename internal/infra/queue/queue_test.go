package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Execute(ctx context.Context, job entity.MassFollowupJob) error {
	return m.Called(ctx, job).Error(0)
}

// fakeAck registra o que o worker fez com cada entrega.
type fakeAck struct {
	mu      sync.Mutex
	acked   int
	nacked  int
	requeue bool
}

func (a *fakeAck) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked++
	return nil
}

func (a *fakeAck) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked++
	a.requeue = requeue
	return nil
}

func (a *fakeAck) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type fakeConsumer struct {
	deliveries chan amqp.Delivery
	err        error
}

func (c *fakeConsumer) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return c.deliveries, c.err
}

func sampleJob() entity.MassFollowupJob {
	return entity.MassFollowupJob{
		ID:           "job-123",
		SessionID:    "sessao",
		Segment:      entity.SegmentQuente,
		DelaySeconds: 3,
		Recipients:   4,
		State:        entity.JobQueued,
		CreatedAt:    time.Date(2025, 10, 8, 10, 0, 0, 0, time.UTC),
	}
}

func TestPublishMassFollowup(t *testing.T) {
	pub := new(MockPublisher)
	job := sampleJob()

	pub.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var got entity.MassFollowupJob
			if err := json.Unmarshal(msg.Body, &got); err != nil {
				return false
			}
			return msg.MessageId == "job-123" &&
				msg.DeliveryMode == amqp.Persistent &&
				msg.ContentType == "application/json" &&
				got.Segment == entity.SegmentQuente &&
				got.Recipients == 4
		})).Return(nil)

	err := NewProducer(pub).PublishMassFollowup(context.Background(), job)

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestPublishMassFollowupError(t *testing.T) {
	pub := new(MockPublisher)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	err := NewProducer(pub).PublishMassFollowup(context.Background(), sampleJob())

	require.Error(t, err)
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func deliver(t *testing.T, body []byte, proc *MockProcessor) *fakeAck {
	t.Helper()
	ack := &fakeAck{}
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: ack, Body: body}
	close(deliveries)

	w := NewWorker(&fakeConsumer{deliveries: deliveries}, proc, nil)
	require.NoError(t, w.Start(context.Background(), QueueName))
	return ack
}

func TestWorkerAcksProcessedJob(t *testing.T) {
	proc := new(MockProcessor)
	proc.On("Execute", mock.Anything, mock.MatchedBy(func(j entity.MassFollowupJob) bool {
		return j.ID == "job-123"
	})).Return(nil)

	body, _ := json.Marshal(sampleJob())
	ack := deliver(t, body, proc)

	assert.Equal(t, 1, ack.acked)
	assert.Zero(t, ack.nacked)
	proc.AssertExpectations(t)
}

func TestWorkerNacksOnProcessorError(t *testing.T) {
	proc := new(MockProcessor)
	proc.On("Execute", mock.Anything, mock.Anything).Return(errors.New("redis fora"))

	body, _ := json.Marshal(sampleJob())
	ack := deliver(t, body, proc)

	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeue)
	assert.Zero(t, ack.acked)
}

func TestWorkerRejectsMalformedMessage(t *testing.T) {
	proc := new(MockProcessor)

	ack := deliver(t, []byte("{não é json"), proc)

	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeue)
	proc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWorkerConsumeError(t *testing.T) {
	w := NewWorker(&fakeConsumer{err: amqp.ErrClosed}, new(MockProcessor), nil)

	assert.Error(t, w.Start(context.Background(), QueueName))
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(&fakeConsumer{deliveries: make(chan amqp.Delivery)}, new(MockProcessor), nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx, QueueName) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker não parou após cancelamento")
	}
}

func TestInlineQueueRunsJob(t *testing.T) {
	proc := new(MockProcessor)
	proc.On("Execute", mock.Anything, mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	q := NewInlineQueue(proc, nil)
	require.NoError(t, q.PublishMassFollowup(ctx, sampleJob()))
	cancel()
	q.Wait()

	proc.AssertNumberOfCalls(t, "Execute", 1)
	jobCtx := proc.Calls[0].Arguments.Get(0).(context.Context)
	assert.NoError(t, jobCtx.Err(), "job não pode herdar o cancelamento da requisição")
}
