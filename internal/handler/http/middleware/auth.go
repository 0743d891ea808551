package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/attendance-backend-go/internal/domain/auth"
	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromRequest rebuilds the authenticated caller from verified
// token claims. It must only run behind AuthRequired.
func CallerFromRequest(r *http.Request) (identity.Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return identity.Caller{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return identity.Caller{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || !identity.Role(role).Valid() {
		return identity.Caller{}, auth.ErrInvalidToken
	}

	return identity.Caller{UserID: userID, Role: identity.Role(role)}, nil
}
