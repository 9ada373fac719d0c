package usecase

import (
	"context"
	"net/mail"
	"strings"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const (
	MsgMissingFields  = "Por favor, preencha todos os campos"
	MsgInvalidEmail   = "Email inválido"
	MsgLoginOK        = "Login realizado com sucesso!"
	MsgRegisterOK     = "Conta criada com sucesso! Faça login para continuar."
	MsgLogoutOK       = "Logout realizado com sucesso!"
	MsgSettingsSaved  = "Configurações salvas com sucesso!"
	msgSettingsFailed = "Erro ao salvar configurações"
	msgSettingsLoad   = "Erro ao carregar configurações"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SettingsPatch altera só os campos enviados.
type SettingsPatch struct {
	Profile            *entity.UserProfile `json:"userProfile"`
	Notifications      *bool               `json:"notifications"`
	EmailNotifications *bool               `json:"emailNotifications"`
	DarkMode           *bool               `json:"darkMode"`
}

type SessionResult struct {
	Settings entity.Settings `json:"settings"`
	Message  string          `json:"message"`
}

// SessionService concentra o estado que antes ficava espalhado pelas telas:
// carrega no início da requisição e salva a cada alteração.
type SessionService struct {
	Repo entity.SettingsRepositoryInterface
}

func NewSessionService(repo entity.SettingsRepositoryInterface) *SessionService {
	return &SessionService{Repo: repo}
}

func (s *SessionService) Load(ctx context.Context, sessionID string) (entity.Settings, error) {
	settings, err := s.Repo.Load(ctx, sessionID)
	if err != nil {
		return entity.Settings{}, &TechnicalError{Code: CodeStorage, Message: msgSettingsLoad, Err: err}
	}
	return settings, nil
}

// Login não consulta nenhum backend: basta email e senha preenchidos.
func (s *SessionService) Login(ctx context.Context, sessionID string, input LoginInput) (*SessionResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, &DomainError{Code: CodeMissingFields, Message: MsgMissingFields}
	}

	settings, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	settings.IsAuthenticated = true
	if settings.Profile.Email == "" {
		settings.Profile.Email = strings.TrimSpace(input.Email)
	}
	if err := s.save(ctx, sessionID, settings); err != nil {
		return nil, err
	}
	return &SessionResult{Settings: settings, Message: MsgLoginOK}, nil
}

// Register valida os campos e volta para o login; não autentica.
func (s *SessionService) Register(ctx context.Context, sessionID string, input RegisterInput) (*SessionResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, &DomainError{Code: CodeMissingFields, Message: MsgMissingFields}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &DomainError{Code: CodeInvalidEmail, Message: MsgInvalidEmail}
	}

	settings, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	settings.Profile.Name = name
	settings.Profile.Email = email
	if err := s.save(ctx, sessionID, settings); err != nil {
		return nil, err
	}
	return &SessionResult{Settings: settings, Message: MsgRegisterOK}, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) (*SessionResult, error) {
	settings, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	settings.IsAuthenticated = false
	if err := s.save(ctx, sessionID, settings); err != nil {
		return nil, err
	}
	return &SessionResult{Settings: settings, Message: MsgLogoutOK}, nil
}

func (s *SessionService) UpdateSettings(ctx context.Context, sessionID string, patch SettingsPatch) (*SessionResult, error) {
	settings, err := s.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if patch.Profile != nil {
		settings.Profile = *patch.Profile
	}
	if patch.Notifications != nil {
		settings.Notifications = *patch.Notifications
	}
	if patch.EmailNotifications != nil {
		settings.EmailNotifications = *patch.EmailNotifications
	}
	if patch.DarkMode != nil {
		settings.DarkMode = *patch.DarkMode
	}

	if err := s.save(ctx, sessionID, settings); err != nil {
		return nil, err
	}
	return &SessionResult{Settings: settings, Message: MsgSettingsSaved}, nil
}

func (s *SessionService) save(ctx context.Context, sessionID string, settings entity.Settings) error {
	if err := s.Repo.Save(ctx, sessionID, settings); err != nil {
		return &TechnicalError{Code: CodeStorage, Message: msgSettingsFailed, Err: err}
	}
	return nil
}
