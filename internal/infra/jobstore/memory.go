package jobstore

import (
	"context"
	"sync"
	"time"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type memoryEntry struct {
	job       entity.MassFollowupJob
	expiresAt time.Time
}

// MemoryJobStore substitui o Redis quando REDIS_ADDR não está configurado.
// Expira pelo mesmo TTL, verificado na leitura.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]memoryEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryJobStore(ttl time.Duration) *MemoryJobStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryJobStore{
		jobs: make(map[string]memoryEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryJobStore) Save(_ context.Context, job entity.MassFollowupJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.jobs {
		if now.After(e.expiresAt) {
			delete(s.jobs, id)
		}
	}
	s.jobs[job.ID] = memoryEntry{job: job, expiresAt: now.Add(s.ttl)}
	return nil
}

func (s *MemoryJobStore) Get(_ context.Context, id string) (*entity.MassFollowupJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.jobs[id]
	if !ok || s.now().After(e.expiresAt) {
		return nil, entity.ErrJobNotFound
	}
	job := e.job
	return &job, nil
}
