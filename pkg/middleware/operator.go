package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
)

// RequireOperator garante que a rota só é servida com claims válidas no
// contexto. Rotas que alteram estado (cargas, geração de narrativa,
// limpeza de cache) usam este reforço além da autenticação global.
func RequireOperator() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok || claims.Email == "" {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
