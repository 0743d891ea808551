package middleware

import (
	"net/http"

	"github.com/staffdesk/attendance-backend-go/internal/domain/identity"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := CallerFromRequest(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if caller.Role != identity.RoleAdmin {
			response.HandleError(w, identity.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
