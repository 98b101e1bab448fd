package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/missiaspietro/pshot-report-api/infrastructure/repository"
	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	apiErrors "github.com/missiaspietro/pshot-report-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *domain.SessionUser, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ResolveSession(ctx context.Context, claims *domain.Claims) (*domain.SessionUser, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config

	now func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Login valida as credenciais e devolve o token de sessão assinado junto
// com a identidade resolvida, para o handler gravar o cookie e responder
// o corpo em uma única passada.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.SessionUser, error) {
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrInvalidCredentials, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", nil, NewAuthError(ErrUserNotFound, apiErrors.ErrInvalidCredentials, "Usuário não encontrado")
	}

	if !user.Active {
		return "", nil, NewAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de sessão")
	}

	session := &domain.SessionUser{
		Email:   user.Email,
		Nome:    user.Nome,
		Empresa: user.Empresa,
	}

	return token, session, nil
}

// generateJWT emite o token de sessão carregando apenas o email. A empresa
// NÃO viaja no token: ela é resolvida na tabela de usuários a cada
// requisição, para que a troca de empresa de um usuário valha na hora.
func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.cfg.Auth.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ResolveSession materializa a identidade do token consultando a tabela de
// usuários. Um usuário desativado após o login perde a sessão aqui.
func (s *Service) ResolveSession(ctx context.Context, claims *domain.Claims) (*domain.SessionUser, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.Active {
		return nil, ErrUserDisabled
	}

	return &domain.SessionUser{
		Email:   user.Email,
		Nome:    user.Nome,
		Empresa: user.Empresa,
	}, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
