package memory

import (
	"context"
	"sync"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// SettingsStore é usado quando DATABASE_URL não está configurada.
// Perde tudo ao reiniciar o processo.
type SettingsStore struct {
	mu   sync.RWMutex
	data map[string]entity.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{data: make(map[string]entity.Settings)}
}

func (s *SettingsStore) Load(_ context.Context, sessionID string) (entity.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.data[sessionID]
	if !ok {
		return entity.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsStore) Save(_ context.Context, sessionID string, settings entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sessionID] = settings
	return nil
}
