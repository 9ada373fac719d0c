package jobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// DefaultTTL: tempo que o resultado do envio fica disponível para o polling.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "followup:job:"

func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}
	return client, nil
}

// keyValue é o subconjunto do cliente Redis usado pelo store.
type keyValue interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type RedisJobStore struct {
	client keyValue
	ttl    time.Duration
}

func NewRedisJobStore(client keyValue, ttl time.Duration) *RedisJobStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisJobStore{client: client, ttl: ttl}
}

func (s *RedisJobStore) Save(ctx context.Context, job entity.MassFollowupJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("erro ao serializar job: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+job.ID, body, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao salvar job %s: %w", job.ID, err)
	}
	return nil
}

func (s *RedisJobStore) Get(ctx context.Context, id string) (*entity.MassFollowupJob, error) {
	raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar job %s: %w", id, err)
	}

	var job entity.MassFollowupJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("job %s corrompido: %w", id, err)
	}
	return &job, nil
}
