package middleware

import (
	"net/http"

	"github.com/vfg2006/permits-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/permits-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/permits-dashboard-api/pkg/log"
)

// RoleMiddleware restringe o acesso aos papéis informados. Com a autenticação
// desabilitada a rota fica bloqueada, já que não há como saber quem chama.
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("auth: access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !authenticating.HasRole(claims, allowedRoles...) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_email": claims.Email,
					"user_role":  claims.Role,
				}).Warn("auth: access denied")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ServiceRoleOnly permite apenas chaves de serviço
func ServiceRoleOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(authenticating.RoleServiceRole)
}
