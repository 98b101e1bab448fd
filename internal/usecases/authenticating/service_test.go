package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/missiaspietro/pshot-report-api/infrastructure/repository/mocks"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		Auth: config.Auth{
			SecretKey:  "segredo-de-teste",
			CookieName: "ps_session",
			SessionTTL: time.Hour,
		},
	}

	service := &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}

	return service, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Nome:         "Maria",
		Email:        "maria@acme.com",
		PasswordHash: string(hash),
		Empresa:      "Acme",
		Active:       true,
	}
}

func TestLogin_sucesso(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	token, session, err := service.Login(context.Background(), "  Maria@Acme.com ", "senha123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, session)
	assert.Equal(t, "Acme", session.Empresa)
	assert.Equal(t, "maria@acme.com", session.Email)

	// O token emitido valida e carrega o email
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "maria@acme.com", claims.Email)
}

func TestLogin_senhaIncorreta(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	_, _, err := service.Login(context.Background(), "maria@acme.com", "errada")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))
}

func TestLogin_usuarioNaoEncontrado(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "nao@existe.com").Return(nil, nil)

	_, _, err := service.Login(context.Background(), "nao@existe.com", "senha")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_usuarioDesativado(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")
	user.Active = false

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	_, _, err := service.Login(context.Background(), "maria@acme.com", "senha123")

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLogin_camposObrigatorios(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, _, err := service.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestLogin_erroDeBanco(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").
		Return(nil, errors.New("connection refused"))

	_, _, err := service.Login(context.Background(), "maria@acme.com", "senha")

	require.Error(t, err)
	assert.False(t, IsCredentialsError(err))
}

func TestValidateToken_expirado(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")

	// Emite um token já vencido
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	token, _, err := service.Login(context.Background(), "maria@acme.com", "senha123")
	require.NoError(t, err)

	service.now = time.Now

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsSessionError(err))
}

func TestValidateToken_assinaturaInvalida(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.ValidateToken("nao-e-um-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveSession(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	session, err := service.ResolveSession(context.Background(), &domain.Claims{Email: "maria@acme.com"})

	require.NoError(t, err)
	assert.Equal(t, "Acme", session.Empresa)
	assert.Equal(t, "Maria", session.Nome)
}

func TestResolveSession_usuarioDesativadoPerdeSessao(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)
	user := activeUser(t, "senha123")
	user.Active = false

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "maria@acme.com").Return(user, nil)

	_, err := service.ResolveSession(context.Background(), &domain.Claims{Email: "maria@acme.com"})

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestResolveSession_usuarioRemovido(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "sumiu@acme.com").Return(nil, nil)

	_, err := service.ResolveSession(context.Background(), &domain.Claims{Email: "sumiu@acme.com"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "maria@acme.com", handleEmail("  Maria@Acme.COM "))
	assert.Equal(t, "a.b@c.com", handleEmail("a. b@c .com"))
}
