package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const sid = "sessao-1"

func TestSessionLoadDefaults(t *testing.T) {
	svc := NewSessionService(newFakeSettingsRepo())

	s, err := svc.Load(context.Background(), sid)

	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated)
	assert.True(t, s.DarkMode)
	assert.True(t, s.Notifications)
	assert.True(t, s.EmailNotifications)
}

func TestLogin(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSessionService(repo)

	res, err := svc.Login(context.Background(), sid, LoginInput{Email: "ana@adv.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, MsgLoginOK, res.Message)
	assert.True(t, repo.data[sid].IsAuthenticated)
	assert.Equal(t, "ana@adv.com", repo.data[sid].Profile.Email)
}

func TestLoginMissingFields(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSessionService(repo)

	for _, in := range []LoginInput{{Email: "a@b.com"}, {Password: "x"}, {}} {
		_, err := svc.Login(context.Background(), sid, in)
		require.Error(t, err)
		assert.True(t, IsDomainError(err))
		assert.Equal(t, MsgMissingFields, err.Error())
	}
	assert.Zero(t, repo.saves)
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSessionService(repo)

	res, err := svc.Register(context.Background(), sid, RegisterInput{Name: "Ana", Email: "ana@adv.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, MsgRegisterOK, res.Message)
	assert.False(t, res.Settings.IsAuthenticated)
	assert.Equal(t, "Ana", repo.data[sid].Profile.Name)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewSessionService(newFakeSettingsRepo())

	_, err := svc.Register(context.Background(), sid, RegisterInput{Email: "ana@adv.com", Password: "x"})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeMissingFields, de.Code)

	_, err = svc.Register(context.Background(), sid, RegisterInput{Name: "Ana", Email: "sem-arroba", Password: "x"})
	require.ErrorAs(t, err, &de)
	assert.Equal(t, CodeInvalidEmail, de.Code)
}

func TestLogout(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.data[sid] = entity.Settings{IsAuthenticated: true, DarkMode: true}
	svc := NewSessionService(repo)

	res, err := svc.Logout(context.Background(), sid)

	require.NoError(t, err)
	assert.Equal(t, MsgLogoutOK, res.Message)
	assert.False(t, repo.data[sid].IsAuthenticated)
	assert.True(t, repo.data[sid].DarkMode)
}

func TestUpdateSettingsAppliesOnlySentFields(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSessionService(repo)
	off := false

	res, err := svc.UpdateSettings(context.Background(), sid, SettingsPatch{
		EmailNotifications: &off,
		Profile:            &entity.UserProfile{Name: "Ana", OAB: "SP 123.456"},
	})

	require.NoError(t, err)
	assert.Equal(t, MsgSettingsSaved, res.Message)
	saved := repo.data[sid]
	assert.False(t, saved.EmailNotifications)
	assert.True(t, saved.Notifications)
	assert.True(t, saved.DarkMode)
	assert.Equal(t, "SP 123.456", saved.Profile.OAB)
}

func TestSessionStorageErrors(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.saveErr = errors.New("conexão recusada")
	svc := NewSessionService(repo)

	_, err := svc.Logout(context.Background(), sid)

	var te *TechnicalError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, CodeStorage, te.Code)
	assert.ErrorIs(t, err, repo.saveErr)
}
