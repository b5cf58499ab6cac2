package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCronAuth(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Segredo correto - libera a requisição",
			secret:     "s3gr3do",
			authHeader: "Bearer s3gr3do",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Segredo incorreto - 401",
			secret:     "s3gr3do",
			authHeader: "Bearer outro",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Sem header de autorização - 401",
			secret:     "s3gr3do",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem o prefixo Bearer - 401",
			secret:     "s3gr3do",
			authHeader: "s3gr3do",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Segredo vazio na configuração - verificação desligada",
			secret:     "",
			authHeader: "",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/rankings/fetch", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			CronAuth(tt.secret)(okHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
