package dto

// UsuarioResponse usuario expuesto por la API (sin credenciales).
type UsuarioResponse struct {
	IDUsuario     int64  `json:"id_usuario"`
	NombreUsuario string `json:"nombre_usuario"`
	NivelUsuario  int16  `json:"nivel_usuario"`
	Rol           string `json:"rol"`
	Estatus       int16  `json:"estatus"`
}
