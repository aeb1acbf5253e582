package dto

// LoginRequest credenciales de acceso: id de usuario + contraseña.
type LoginRequest struct {
	IDUsuario int64  `json:"id_usuario" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResponse token de acceso más la información del usuario autenticado.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"` // siempre "bearer"
	User        UsuarioResponse `json:"user_info"`
}

// RolResponse rol resuelto del usuario actual.
type RolResponse struct {
	IDUsuario int64  `json:"id_usuario"`
	Rol       string `json:"rol"`
	Nivel     int16  `json:"nivel"`
}
