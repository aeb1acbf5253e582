// Package role resuelve el nivel numérico de un usuario a un rol con nombre y
// concentra la autorización en una tabla de políticas: operación → roles
// permitidos. Un solo chequeo a la entrada de cada operación, sin condicionales
// dispersos.
package role

import (
	"github.com/scisp/conteos-api/internal/domain"
	"github.com/scisp/conteos-api/internal/domain/entity"
)

// Role es el nombre del rol resuelto desde el nivel del usuario.
type Role string

// Roles válidos. Desconocido no satisface ninguna política.
const (
	RoleAdministrador Role = "administrador"
	RoleSupervisor    Role = "supervisor"
	RoleCCA           Role = "cca"
	RoleApp           Role = "app"
	RoleDesconocido   Role = "desconocido"
)

// FromNivel mapea el nivel almacenado al rol. Determinista y sin efectos;
// niveles fuera de 1–4 resuelven a Desconocido.
func FromNivel(nivel int16) Role {
	switch nivel {
	case 1:
		return RoleAdministrador
	case 2:
		return RoleSupervisor
	case 3:
		return RoleCCA
	case 4:
		return RoleApp
	default:
		return RoleDesconocido
	}
}

// Of resuelve el rol de un usuario.
func Of(u *entity.Usuario) Role {
	if u == nil {
		return RoleDesconocido
	}
	return FromNivel(u.Nivel)
}

// Operacion identifica una operación del motor de conteos para la tabla de políticas.
type Operacion string

const (
	OpCrear     Operacion = "crear"
	OpAsignar   Operacion = "asignar"
	OpEditar    Operacion = "editar"
	OpContestar Operacion = "contestar"
	OpEliminar  Operacion = "eliminar"
	OpObtener   Operacion = "obtener"
	OpListar    Operacion = "listar"
)

// todos es el conjunto completo de roles operativos.
var todos = []Role{RoleAdministrador, RoleSupervisor, RoleCCA, RoleApp}

// Politica es la tabla operación → roles permitidos.
var Politica = map[Operacion][]Role{
	OpCrear:     todos,
	OpAsignar:   {RoleAdministrador, RoleCCA, RoleSupervisor},
	OpEditar:    {RoleAdministrador, RoleSupervisor},
	OpContestar: todos,
	OpEliminar:  {RoleAdministrador},
	OpObtener:   todos,
	OpListar:    todos,
}

// RolesPermitidos devuelve los roles permitidos de una operación como strings
// (para el middleware HTTP, que compara contra el claim del token).
func RolesPermitidos(op Operacion) []string {
	roles := Politica[op]
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// Autorizar verifica que el usuario esté activo y que su rol esté en la
// política de la operación. Usuarios inactivos nunca autorizan, aunque la
// autenticación aguas arriba ya debería haberlos excluido.
func Autorizar(u *entity.Usuario, op Operacion) error {
	if !u.Activo() {
		return domain.ErrForbidden
	}
	r := Of(u)
	for _, allowed := range Politica[op] {
		if r == allowed {
			return nil
		}
	}
	return domain.ErrForbidden
}
