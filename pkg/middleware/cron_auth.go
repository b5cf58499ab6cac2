package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/appstore-ranking-api/pkg/apiErrors"
)

// CronAuth protege as rotas que disparam ingestão com o segredo compartilhado
// do agendador externo. Com segredo vazio a verificação é desligada (uso local).
func CronAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == authHeader || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				logrus.WithField("path", r.URL.Path).Warn("Tentativa de disparo de ingestão com segredo inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCronSecret, "Segredo de cron inválido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
