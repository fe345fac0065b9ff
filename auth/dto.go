// Data Transfer Objects for the identity API.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Name     string  `json:"name" example:"Alice"`
	Email    string  `json:"email" example:"alice@example.com"`
	Password string  `json:"password" example:"strongpassword123"`
	Phone    *string `json:"phone_number,omitempty" example:"+3712345678"`
	Role     string  `json:"role" example:"buyer"` // "seller" or "buyer"
}

// RegisterResponse is returned on successful registration. The one-time code
// itself is delivered out of band, never in the response.
type RegisterResponse struct {
	Message string `json:"message" example:"user registered successfully, otp sent to email"`
	UserID  int    `json:"user_id" example:"1"`
}

// OTPValidationRequest represents the OTP verification payload.
type OTPValidationRequest struct {
	Email string `json:"email" example:"alice@example.com"`
	OTP   string `json:"otp" example:"042317"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token  string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID int    `json:"user_id" example:"1"`
	Name   string `json:"name" example:"Alice"`
	RoleID int    `json:"role_id" example:"2"`
}

// LogoutRequest represents the logout payload.
type LogoutRequest struct {
	UserID int `json:"user_id" example:"1"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
