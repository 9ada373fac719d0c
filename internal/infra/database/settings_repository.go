package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const settingsSchema = `
	CREATE TABLE IF NOT EXISTS session_settings (
		session_id TEXT PRIMARY KEY,
		settings   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// SettingsRepository guarda as configurações de cada sessão como JSON,
// no mesmo formato que o front salvava no navegador.
type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Migrate cria a tabela se ainda não existir.
func (r *SettingsRepository) Migrate(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, settingsSchema); err != nil {
		return fmt.Errorf("erro ao criar tabela session_settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) Load(ctx context.Context, sessionID string) (entity.Settings, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT settings FROM session_settings WHERE session_id = $1`,
		sessionID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.DefaultSettings(), nil
	}
	if err != nil {
		return entity.Settings{}, err
	}

	settings := entity.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return entity.Settings{}, fmt.Errorf("configurações corrompidas da sessão %s: %w", sessionID, err)
	}
	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, sessionID string, s entity.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO session_settings (session_id, settings, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (session_id)
		DO UPDATE SET
			settings = EXCLUDED.settings,
			updated_at = NOW()
	`
	_, err = r.DB.ExecContext(ctx, query, sessionID, raw)
	return err
}
