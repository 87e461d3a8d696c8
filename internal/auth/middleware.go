package auth

import (
	"context"
	"net/http"
	"strings"

	"recruitd/internal/models"
	"recruitd/internal/token"

	"github.com/gorilla/mux"
)

// Principal — аутентифицированный субъект запроса, восстановленный из
// claim'ов токена.
type Principal struct {
	UserID string
	Roles  []string
	Pages  []string
}

func (p *Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// HasPage — проверка доступа по странице; её зовут контроллеры перед
// выполнением операции.
func (p *Principal) HasPage(name string) bool {
	for _, pg := range p.Pages {
		if pg == name {
			return true
		}
	}
	return false
}

type ctxKey string

const principalKey ctxKey = "principal"

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}

// Bearer проверяет заголовок Authorization: Bearer <jwt> и кладёт Principal
// в контекст запроса. Невалидный/просроченный токен — 401.
func Bearer(iss *token.Issuer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const p = "Bearer "
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, p) {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token", nil)
				return
			}
			claims, err := iss.Parse(strings.TrimPrefix(auth, p))
			if err != nil {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid token", nil)
				return
			}
			pr := &Principal{UserID: claims.Subject, Roles: claims.Roles, Pages: claims.Pages}
			ctx := context.WithValue(r.Context(), principalKey, pr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает, если у субъекта есть хотя бы одна из ролей; иначе 403.
func RequireRole(names ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pr, ok := PrincipalFromContext(r.Context())
			if !ok {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "missing bearer token", nil)
				return
			}
			for _, n := range names {
				if pr.HasRole(n) {
					next.ServeHTTP(w, r)
					return
				}
			}
			models.WriteProblem(w, http.StatusForbidden, "Forbidden", "insufficient role", nil)
		})
	}
}

// RequirePage — страничный гейт: отсутствие страницы в claim'ах даёт 401
// (контракт исходного API, не 403).
func RequirePage(name string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pr, ok := PrincipalFromContext(r.Context())
			if !ok || !pr.HasPage(name) {
				models.WriteProblem(w, http.StatusUnauthorized, "Unauthorized", "page access denied", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
