package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectome-neuprint/neuprint-go/internal/app"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
)

// auth requires a bearer token on every request.
//
// Without a sign key any non-empty token passes, which is how the sandbox is
// used with throwaway tokens. With a sign key the token must be an HS256 JWT
// signed with it and not expired; its email claim is stored in the request
// context under [utils.AccountCtxKey].
//
// Rejected requests get 401 with a JSON error body, like neuPrint.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if h.signKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.signKey, "")
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Msg(app.MsgTokenExpired)
				utils.WriteJSONError(w, app.MsgTokenExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
			return
		}

		log.Debug().Str("account", token.Claims.Email).Str("level", token.Claims.Level).Msg(app.MsgTokenVerified)

		ctx := context.WithValue(r.Context(), utils.AccountCtxKey, token.Claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
