package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/bazario-go/apperror"
	"github.com/user/bazario-go/auth"
)

// UserHandlers provides HTTP handlers for user listing and profiles.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers godoc
// @Summary List users
// @Description Fetches users filtered by role: 'seller', 'buyer', or 'all'.
// @Tags Users
// @Produce json
// @Param role query string false "Role filter: seller, buyer, or all" default(all)
// @Success 200 {array} UserResponse "Users matching the filter"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid filter value"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No users match"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roleFilter := r.URL.Query().Get("role")

		result, err := h.service.ListUsers(r.Context(), roleFilter)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// HandleGetProfile godoc
// @Summary Get current user's profile
// @Description Retrieves the profile of the authenticated user.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse "User profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/users/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("user id not found in context", nil))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
