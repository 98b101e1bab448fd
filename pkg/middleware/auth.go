package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/missiaspietro/pshot-report-api/internal/config"
	"github.com/missiaspietro/pshot-report-api/internal/domain"
	"github.com/missiaspietro/pshot-report-api/internal/usecases/authenticating"
	apiErrors "github.com/missiaspietro/pshot-report-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyUser guarda o *domain.SessionUser resolvido do cookie
	ContextKeyUser contextKey = "user"
)

// publicPaths não exigem cookie de sessão
// Logout é público para que uma sessão já expirada ainda consiga limpar o
// cookie do navegador.
var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/v1/logout":   true,
	"/healthcheck": true,
}

// AuthMiddleware valida o cookie de sessão e injeta a identidade resolvida
// no contexto. A empresa vem da tabela de usuários, não do token, então uma
// troca de empresa vale já na próxima requisição.
func AuthMiddleware(authService authenticating.Authenticator, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(cfg.Auth.CookieName)
			if err != nil || cookie.Value == "" {
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Cookie de sessão ausente", nil)
				return
			}

			claims, err := authService.ValidateToken(cookie.Value)
			if err != nil {
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão expirada", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Cookie de sessão inválido", nil)
				return
			}

			session, err := authService.ResolveSession(r.Context(), claims)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrSessionRequired, "Sessão não corresponde a um usuário ativo", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext extrai a identidade injetada pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*domain.SessionUser, bool) {
	session, ok := ctx.Value(ContextKeyUser).(*domain.SessionUser)
	return session, ok
}
