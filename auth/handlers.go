package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/bazario-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user and issues a one-time verification code.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.RegisterResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or unknown role"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
			WriteError(w, r, apperror.NewBadRequestError("name, email, password, and role are required", nil))
			return
		}

		user, _, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "user registered successfully, otp sent to email",
			UserID:  user.ID,
		})
	}
}

// HandleValidateOTP godoc
// @Summary Validate OTP
// @Description Verifies a one-time code for the given email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param otpBody body auth.OTPValidationRequest true "OTP validation details"
// @Success 200 {object} auth.MessageResponse "OTP validated successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Wrong, expired, or missing code"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Unknown user"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/validate-otp [post]
func (h *Handlers) HandleValidateOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OTPValidationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.OTP == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and otp are required", nil))
			return
		}

		if err := h.service.ValidateOTP(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "otp validated successfully"})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Authenticates a user, records a session audit entry, and returns an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Closes the user's most recent open session audit entry.
// @Tags Auth
// @Accept json
// @Produce json
// @Param logoutBody body auth.LogoutRequest true "Logout details"
// @Success 200 {object} auth.MessageResponse "Logged out successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Missing user id"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - No active session"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.UserID == 0 {
			WriteError(w, r, apperror.NewBadRequestError("user_id is required", nil))
			return
		}

		if err := h.service.Logout(r.Context(), req.UserID); err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into a standardized apperror response.
// Errors that are not *apperror.AppError are wrapped as internal errors.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred: "+err.Error(), err)
	}

	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
