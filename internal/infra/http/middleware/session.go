package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const SessionCookie = "sid"

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	settingsKey
)

type SettingsLoader interface {
	Load(ctx context.Context, sessionID string) (entity.Settings, error)
}

// Session garante um cookie de sessão e carrega as configurações dela no
// contexto antes do handler. Falha ao carregar não bloqueia a requisição.
func Session(loader SettingsLoader, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sessionID = c.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			if loader != nil {
				settings, err := loader.Load(ctx, sessionID)
				if err != nil {
					logger.Warn("⚠️ Falha ao carregar configurações da sessão", zap.Error(err))
				} else {
					ctx = context.WithValue(ctx, settingsKey, settings)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// SessionSettings devolve o que foi carregado no início da requisição.
func SessionSettings(ctx context.Context) (entity.Settings, bool) {
	s, ok := ctx.Value(settingsKey).(entity.Settings)
	return s, ok
}

// WithSession é usado pelos testes de handler para simular o middleware.
func WithSession(ctx context.Context, sessionID string, settings *entity.Settings) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	if settings != nil {
		ctx = context.WithValue(ctx, settingsKey, *settings)
	}
	return ctx
}
