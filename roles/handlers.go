package roles

import (
	"encoding/json"
	"net/http"

	"github.com/user/bazario-go/auth"
)

// Handlers provides HTTP handlers for role lookup.
type Handlers struct {
	store *Store
}

// NewHandlers creates new role Handlers.
func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// HandleListRoles godoc
// @Summary List roles
// @Description Returns the role lookup table.
// @Tags Roles
// @Produce json
// @Success 200 {array} roles.Role "Roles"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No roles defined"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/roles [get]
func (h *Handlers) HandleListRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.store.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
