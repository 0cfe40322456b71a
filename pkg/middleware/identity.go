package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyAccountContext guarda o valor do header X-Account-Context
	// injetado pelo gateway. A autenticação em si acontece fora deste
	// serviço; aqui só exigimos que a identidade venha preenchida.
	ContextKeyAccountContext contextKey = "accountContext"

	accountContextHeader = "X-Account-Context"
)

// Identity rejeita requisições sem o header de identidade do gateway.
// Healthcheck e métricas ficam fora da exigência para não quebrar probes.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			identity := r.Header.Get(accountContextHeader)
			if identity == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingIdentity, "Header X-Account-Context é obrigatório", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccountContext, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountContextFrom retorna a identidade da requisição, quando presente.
func AccountContextFrom(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(ContextKeyAccountContext).(string)
	return identity, ok
}
