package interceptors

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/nordlead/refunds.api.nordlead.dk/config"
)

// OperatorHeader carries the shared secret identifying the operator console.
const OperatorHeader = "X-Operator-Key"

// OperatorAuthenticationInterceptor checks that requests carry the operator
// shared secret. Webhook ingress does not pass through here; it is
// authenticated by signature verification instead.
type OperatorAuthenticationInterceptor struct {
	Config config.Config
}

// OperatorAuthenticationIntercept rejects requests without a valid operator key
func (interceptor *OperatorAuthenticationInterceptor) OperatorAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		expected := interceptor.Config.OperatorAPIKey
		if expected == "" {
			log.ErrorR(r, fmt.Errorf("OperatorAuthenticationInterceptor misconfigured: no operator api key set"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		supplied := r.Header.Get(OperatorHeader)
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) != 1 {
			log.InfoR(r, "OperatorAuthenticationInterceptor unauthorised: operator key missing or invalid")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
