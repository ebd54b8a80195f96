package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/scott20050218/HA3/internal/middlewares"
)

// MeErrorResponse represents an error response for the identity endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler that reports the authenticated user.
// The auth middleware has already resolved the token to a stored user.
// @Summary Current user
// @Description Returns the user resolved from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Authenticated user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
	}
}
