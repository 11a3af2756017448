package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edututor/edututor/internal/auth"
	"github.com/edututor/edututor/internal/rbac"
)

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// POST /auth/password — authenticated users rotate their own password.
func ChangePasswordHandler(users *auth.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := rbac.SubjectFromContext(r.Context())
		if email == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req changePasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		err := users.ChangePassword(r.Context(), email, req.OldPassword, req.NewPassword)
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			http.Error(w, "new password required", http.StatusBadRequest)
		case errors.Is(err, auth.ErrInvalidCredentials):
			http.Error(w, "incorrect old password", http.StatusForbidden)
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}
}
