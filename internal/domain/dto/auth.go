package dto

// RegisterRequest is the POST /api/register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the POST /api/login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the common shape of auth endpoint replies.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
