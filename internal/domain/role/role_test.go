package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scisp/conteos-api/internal/domain"
	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/role"
)

func TestFromNivel_MapeoDeterminista(t *testing.T) {
	casos := []struct {
		nivel    int16
		esperado role.Role
	}{
		{1, role.RoleAdministrador},
		{2, role.RoleSupervisor},
		{3, role.RoleCCA},
		{4, role.RoleApp},
		{0, role.RoleDesconocido},
		{5, role.RoleDesconocido},
		{-1, role.RoleDesconocido},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, role.FromNivel(c.nivel), "nivel %d", c.nivel)
	}
}

func TestAutorizar_RolPermitido(t *testing.T) {
	admin := &entity.Usuario{ID: 1, Nivel: 1, Estatus: entity.EstatusActivo}
	assert.NoError(t, role.Autorizar(admin, role.OpEliminar))

	supervisor := &entity.Usuario{ID: 2, Nivel: 2, Estatus: entity.EstatusActivo}
	assert.NoError(t, role.Autorizar(supervisor, role.OpEditar))
	assert.NoError(t, role.Autorizar(supervisor, role.OpAsignar))
}

func TestAutorizar_RolNoPermitido(t *testing.T) {
	app := &entity.Usuario{ID: 4, Nivel: 4, Estatus: entity.EstatusActivo}
	assert.ErrorIs(t, role.Autorizar(app, role.OpEliminar), domain.ErrForbidden)
	assert.ErrorIs(t, role.Autorizar(app, role.OpAsignar), domain.ErrForbidden)
	assert.ErrorIs(t, role.Autorizar(app, role.OpEditar), domain.ErrForbidden)

	cca := &entity.Usuario{ID: 3, Nivel: 3, Estatus: entity.EstatusActivo}
	assert.ErrorIs(t, role.Autorizar(cca, role.OpEditar), domain.ErrForbidden)
}

// Un usuario inactivo no autoriza ninguna operación, aunque su nivel sea administrador.
func TestAutorizar_UsuarioInactivo(t *testing.T) {
	inactivo := &entity.Usuario{ID: 1, Nivel: 1, Estatus: entity.EstatusInactivo}
	for _, op := range []role.Operacion{role.OpCrear, role.OpAsignar, role.OpEditar, role.OpContestar, role.OpEliminar, role.OpObtener, role.OpListar} {
		assert.ErrorIs(t, role.Autorizar(inactivo, op), domain.ErrForbidden, "op %s", op)
	}
}

// Un nivel fuera del mapeo no satisface ninguna política.
func TestAutorizar_NivelDesconocido(t *testing.T) {
	raro := &entity.Usuario{ID: 9, Nivel: 7, Estatus: entity.EstatusActivo}
	assert.ErrorIs(t, role.Autorizar(raro, role.OpListar), domain.ErrForbidden)
}

func TestRolesPermitidos_TablaDePoliticas(t *testing.T) {
	assert.ElementsMatch(t, []string{"administrador"}, role.RolesPermitidos(role.OpEliminar))
	assert.ElementsMatch(t, []string{"administrador", "supervisor"}, role.RolesPermitidos(role.OpEditar))
	assert.ElementsMatch(t, []string{"administrador", "cca", "supervisor"}, role.RolesPermitidos(role.OpAsignar))
	assert.ElementsMatch(t,
		[]string{"administrador", "supervisor", "cca", "app"},
		role.RolesPermitidos(role.OpContestar))
}
