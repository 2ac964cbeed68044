package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/jdrosales/playmerch-backend/api/responses"
	"github.com/jdrosales/playmerch-backend/pkg/carttoken"
	"github.com/jdrosales/playmerch-backend/pkg/config"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
)

const cartTokenHeader = "X-PM-Cart-Token"

// CartSession resolves the anonymous cart session for the request. A valid
// token names an existing cart; a missing or expired token silently starts
// a fresh session, and the new token is returned on the response header so
// the browser can echo it back.
func CartSession(cfg config.CartTokenConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := strings.TrimSpace(r.Header.Get(cartTokenHeader))
			if raw != "" {
				claims, err := carttoken.Parse(cfg, raw)
				if err == nil {
					if logg != nil {
						ctx = logg.WithCartID(ctx, claims.CartID)
					}
					next.ServeHTTP(w, r.WithContext(WithCartID(ctx, claims.CartID)))
					return
				}
				// fall through to a fresh session on any parse failure
			}

			token, cartID, err := carttoken.Mint(cfg, time.Now())
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint cart token"))
				return
			}

			w.Header().Set(cartTokenHeader, token)
			if logg != nil {
				ctx = logg.WithCartID(ctx, cartID)
			}
			next.ServeHTTP(w, r.WithContext(WithCartID(ctx, cartID)))
		})
	}
}
