package dto

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogoutRequest cuerpo de POST /auth/logout.
type LogoutRequest struct {
	Token string `json:"token"`
}

// RefreshTokenRequest cuerpo de POST /auth/refresh-token.
type RefreshTokenRequest struct {
	IDUser   string `json:"idUser"`
	OldToken string `json:"oldToken"`
}

// ResetPasswordRequest cuerpo de POST /auth/reset-password. Exige
// re-autenticarse con la contraseña actual.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// CreateAuthRequest cuerpo de POST /auth (alta manual de una sesión).
type CreateAuthRequest struct {
	IDUser string `json:"idUser"`
	Token  string `json:"token"`
}
