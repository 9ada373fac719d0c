package entity

import "context"

type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	OAB   string `json:"oab"`
}

// Settings é o estado da sessão do navegador: carregado no início da requisição,
// salvo a cada alteração.
type Settings struct {
	IsAuthenticated    bool        `json:"isAuthenticated"`
	Profile            UserProfile `json:"userProfile"`
	Notifications      bool        `json:"notifications"`
	EmailNotifications bool        `json:"emailNotifications"`
	DarkMode           bool        `json:"darkMode"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications:      true,
		EmailNotifications: true,
		DarkMode:           true,
	}
}

type SettingsRepositoryInterface interface {
	// Load retorna DefaultSettings quando a sessão ainda não existe.
	Load(ctx context.Context, sessionID string) (Settings, error)
	Save(ctx context.Context, sessionID string, s Settings) error
}
