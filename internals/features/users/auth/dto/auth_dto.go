package dto

// ================== REQUEST ==================
type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

// ================== RESPONSE ==================
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // detik
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	UserRole    string `json:"user_role"`
}
