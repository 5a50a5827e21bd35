package models

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"INS4821390"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	AccessToken        string `json:"access_token"`
	TokenType          string `json:"token_type" example:"Bearer"`
	ExpiresIn          int64  `json:"expires_in" example:"43200"`
	MustChangePassword bool   `json:"must_change_password"`
	RedirectTo         string `json:"redirect_to" example:"/workspace"`
}

// PasswordChangeRequest is the first-login password form
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
