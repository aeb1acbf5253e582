package entity

// Estatus válidos para Usuario.
const (
	EstatusInactivo int16 = 0
	EstatusActivo   int16 = 1
)

// Usuario representa un usuario del sistema. Su alta/baja se administra fuera
// de esta API; aquí es de solo lectura.
type Usuario struct {
	ID           int64
	Nombre       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nivel        int16  // 1=administrador, 2=supervisor, 3=cca, 4=app
	Estatus      int16  // 0=inactivo, 1=activo
}

// Activo indica si el usuario puede operar en el sistema.
func (u *Usuario) Activo() bool {
	return u != nil && u.Estatus == EstatusActivo
}
