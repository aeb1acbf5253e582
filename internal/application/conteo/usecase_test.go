package conteo_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scisp/conteos-api/internal/application/conteo"
	"github.com/scisp/conteos-api/internal/application/dto"
	"github.com/scisp/conteos-api/internal/domain"
	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarios struct {
	users map[int64]entity.Usuario
}

func (f *fakeUsuarios) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copia := u
	return &copia, nil
}

func (f *fakeUsuarios) ListActivos(_ context.Context) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.users {
		if u.Estatus == entity.EstatusActivo {
			copia := u
			out = append(out, &copia)
		}
	}
	return out, nil
}

type fakeSucursales struct {
	sucursales map[string]entity.Sucursal
}

func (f *fakeSucursales) GetByID(_ context.Context, idCentro string) (*entity.Sucursal, error) {
	s, ok := f.sucursales[idCentro]
	if !ok {
		return nil, nil
	}
	copia := s
	return &copia, nil
}

func (f *fakeSucursales) List(_ context.Context) ([]*entity.Sucursal, error) {
	var out []*entity.Sucursal
	for _, s := range f.sucursales {
		copia := s
		out = append(out, &copia)
	}
	return out, nil
}

// fakeConteos guarda copias profundas, igual que una BD: las mutaciones del
// motor solo se ven tras Create/Update/UpdateExistencias.
type fakeConteos struct {
	seq       int64
	detSeq    int64
	data      map[int64]*entity.Conteo
	insertado []int64 // orden de creación
}

func newFakeConteos() *fakeConteos {
	return &fakeConteos{data: make(map[int64]*entity.Conteo)}
}

func clonar(c *entity.Conteo) *entity.Conteo {
	copia := *c
	copia.Detalles = make([]entity.ConteoDetalle, len(c.Detalles))
	copy(copia.Detalles, c.Detalles)
	return &copia
}

func (f *fakeConteos) Create(_ context.Context, c *entity.Conteo) error {
	f.seq++
	c.ID = f.seq
	for i := range c.Detalles {
		f.detSeq++
		c.Detalles[i].ID = f.detSeq
		c.Detalles[i].ConteoID = c.ID
	}
	f.data[c.ID] = clonar(c)
	f.insertado = append(f.insertado, c.ID)
	return nil
}

func (f *fakeConteos) GetByID(_ context.Context, id int64) (*entity.Conteo, error) {
	c, ok := f.data[id]
	if !ok {
		return nil, nil
	}
	return clonar(c), nil
}

func (f *fakeConteos) Update(_ context.Context, c *entity.Conteo) error {
	for i := range c.Detalles {
		if c.Detalles[i].ID == 0 {
			f.detSeq++
			c.Detalles[i].ID = f.detSeq
		}
	}
	f.data[c.ID] = clonar(c)
	return nil
}

func (f *fakeConteos) UpdateExistencias(_ context.Context, c *entity.Conteo) error {
	f.data[c.ID] = clonar(c)
	return nil
}

func (f *fakeConteos) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.data[id]; !ok {
		return false, nil
	}
	delete(f.data, id)
	for i, v := range f.insertado {
		if v == id {
			f.insertado = append(f.insertado[:i], f.insertado[i+1:]...)
			break
		}
	}
	return true, nil
}

func (f *fakeConteos) List(_ context.Context, fl repository.ConteoFiltro) ([]*entity.Conteo, error) {
	var filtrados []*entity.Conteo
	for _, id := range f.insertado {
		c := f.data[id]
		if fl.IDCentro != nil && c.IDCentro != *fl.IDCentro {
			continue
		}
		if fl.Envio != nil && c.Envio != *fl.Envio {
			continue
		}
		if fl.IDUsuario != nil && c.IDUsuario != *fl.IDUsuario {
			continue
		}
		filtrados = append(filtrados, clonar(c))
	}
	if fl.Offset >= len(filtrados) {
		return nil, nil
	}
	filtrados = filtrados[fl.Offset:]
	if fl.Limit < len(filtrados) {
		filtrados = filtrados[:fl.Limit]
	}
	return filtrados, nil
}

// fakeTx ejecuta el callback directo sobre el fake; la atomicidad real la
// prueba la capa postgres, aquí interesa que el motor no escriba nada antes
// de validar.
type fakeTx struct {
	repo *fakeConteos
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.ConteoRepository) error) error {
	return fn(f.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del entorno de pruebas
// ──────────────────────────────────────────────────────────────────────────────

const (
	idAdmin      int64 = 1
	idSupervisor int64 = 2
	idCCA        int64 = 3
	idApp        int64 = 4
	idInactivo   int64 = 9
	idFantasma   int64 = 99 // no existe en almacenamiento
)

type engineEnv struct {
	uc      *conteo.ConteoUseCase
	conteos *fakeConteos
}

func newEnv(t *testing.T) *engineEnv {
	t.Helper()
	usuarios := &fakeUsuarios{users: map[int64]entity.Usuario{
		idAdmin:      {ID: idAdmin, Nombre: "Alicia Admin", Nivel: 1, Estatus: entity.EstatusActivo},
		idSupervisor: {ID: idSupervisor, Nombre: "Samuel Supervisor", Nivel: 2, Estatus: entity.EstatusActivo},
		idCCA:        {ID: idCCA, Nombre: "Carla CCA", Nivel: 3, Estatus: entity.EstatusActivo},
		idApp:        {ID: idApp, Nombre: "Andrés App", Nivel: 4, Estatus: entity.EstatusActivo},
		idInactivo:   {ID: idInactivo, Nombre: "Iván Inactivo", Nivel: 1, Estatus: entity.EstatusInactivo},
	}}
	sucursales := &fakeSucursales{sucursales: map[string]entity.Sucursal{
		"S001": {IDCentro: "S001", Nombre: "Centro Norte"},
		"S002": {IDCentro: "S002", Nombre: "Centro Sur"},
	}}
	conteos := newFakeConteos()
	uc := conteo.NewConteoUseCase(&fakeTx{repo: conteos}, conteos, usuarios, sucursales, zerolog.Nop())
	return &engineEnv{uc: uc, conteos: conteos}
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func detalles() []dto.DetalleRequest {
	return []dto.DetalleRequest{
		{IDProducto: "P-100", ExistenciaTeorica: dec(10)},
		{IDProducto: "P-200", ExistenciaTeorica: dec(5)},
	}
}

func fechaRelativa(dias int) string {
	return time.Now().UTC().AddDate(0, 0, dias).Format(dto.FechaFormato)
}

// asignarPendiente deja un conteo pendiente asignado a idApp y devuelve su id.
func asignarPendiente(t *testing.T, env *engineEnv) int64 {
	t.Helper()
	out, err := env.uc.Asignar(context.Background(), idSupervisor, dto.AsignarConteoRequest{
		IDCentro:    "S001",
		IDUsuario:   idApp,
		FechaConteo: fechaRelativa(1),
		Detalles:    detalles(),
	})
	require.NoError(t, err)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

// Todo conteo creado queda finalizado con solicitante == asignado == caller,
// sin importar el payload.
func TestCrear_QuedaFinalizadoYAutoasignado(t *testing.T) {
	env := newEnv(t)
	for _, caller := range []int64{idAdmin, idSupervisor, idCCA, idApp} {
		out, err := env.uc.Crear(context.Background(), caller, dto.CrearConteoRequest{
			IDCentro: "S001",
			Detalles: detalles(),
		})
		require.NoError(t, err, "caller %d", caller)

		assert.Equal(t, int16(entity.EnvioFinalizado), out.Envio)
		assert.Equal(t, "finalizado", out.Estado)
		assert.Equal(t, caller, out.IDRealizo)
		assert.Equal(t, caller, out.IDUsuario)
		assert.Equal(t, time.Now().UTC().Format(dto.FechaFormato), out.FechaConteo,
			"la fecha la asigna el servidor")
		assert.Len(t, out.Detalles, 2)
	}
}

func TestCrear_SucursalInexistente(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Crear(context.Background(), idApp, dto.CrearConteoRequest{
		IDCentro: "NO-EXISTE",
		Detalles: detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
	assert.Empty(t, env.conteos.insertado, "no debe persistir nada")
}

func TestCrear_SinDetalles(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Crear(context.Background(), idApp, dto.CrearConteoRequest{IDCentro: "S001"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrear_CallerInexistente(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Crear(context.Background(), idFantasma, dto.CrearConteoRequest{
		IDCentro: "S001", Detalles: detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCrear_CallerInactivo(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Crear(context.Background(), idInactivo, dto.CrearConteoRequest{
		IDCentro: "S001", Detalles: detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignar
// ──────────────────────────────────────────────────────────────────────────────

func TestAsignar_QuedaPendiente(t *testing.T) {
	env := newEnv(t)
	for _, fecha := range []string{fechaRelativa(0), fechaRelativa(1), fechaRelativa(30)} {
		out, err := env.uc.Asignar(context.Background(), idCCA, dto.AsignarConteoRequest{
			IDCentro:    "S002",
			IDUsuario:   idApp,
			FechaConteo: fecha,
			Detalles:    detalles(),
		})
		require.NoError(t, err, "fecha %s", fecha)

		assert.Equal(t, int16(entity.EnvioPendiente), out.Envio)
		assert.Equal(t, idCCA, out.IDRealizo, "realiza quien asigna")
		assert.Equal(t, idApp, out.IDUsuario, "contesta el asignado")
		assert.Equal(t, fecha, out.FechaConteo)
	}
}

func TestAsignar_FechaPasada(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Asignar(context.Background(), idAdmin, dto.AsignarConteoRequest{
		IDCentro:    "S001",
		IDUsuario:   idApp,
		FechaConteo: fechaRelativa(-1),
		Detalles:    detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Empty(t, env.conteos.insertado, "una fecha pasada no persiste nada")
}

func TestAsignar_FechaMalFormada(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Asignar(context.Background(), idAdmin, dto.AsignarConteoRequest{
		IDCentro:    "S001",
		IDUsuario:   idApp,
		FechaConteo: "31/12/2026",
		Detalles:    detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsignar_RolAppProhibido(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Asignar(context.Background(), idApp, dto.AsignarConteoRequest{
		IDCentro:    "S001",
		IDUsuario:   idCCA,
		FechaConteo: fechaRelativa(1),
		Detalles:    detalles(),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAsignar_AsignadoInactivoOInexistente(t *testing.T) {
	env := newEnv(t)
	for _, asignado := range []int64{idInactivo, idFantasma} {
		_, err := env.uc.Asignar(context.Background(), idSupervisor, dto.AsignarConteoRequest{
			IDCentro:    "S001",
			IDUsuario:   asignado,
			FechaConteo: fechaRelativa(1),
			Detalles:    detalles(),
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound, "asignado %d", asignado)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar
// ──────────────────────────────────────────────────────────────────────────────

func TestEditar_PendienteConservaSolicitante(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env) // realiza idSupervisor

	centro := "S002"
	nuevos := []dto.DetalleRequest{{IDProducto: "P-300", ExistenciaTeorica: dec(7)}}
	out, err := env.uc.Editar(context.Background(), idAdmin, id, dto.EditarConteoRequest{
		IDCentro: &centro,
		Detalles: &nuevos,
	})
	require.NoError(t, err)

	assert.Equal(t, int16(entity.EnvioPendiente), out.Envio, "editar no cambia el estado")
	assert.Equal(t, "S002", out.IDCentro)
	assert.Equal(t, idSupervisor, out.IDRealizo, "el solicitante original se conserva aunque edite otro")
	require.Len(t, out.Detalles, 1)
	assert.Equal(t, "P-300", out.Detalles[0].IDProducto)
}

func TestEditar_CambioExplicitoDeAsignado(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	nuevo := idCCA
	out, err := env.uc.Editar(context.Background(), idSupervisor, id, dto.EditarConteoRequest{IDUsuario: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, idCCA, out.IDUsuario)
	assert.Equal(t, idSupervisor, out.IDRealizo)
}

func TestEditar_FinalizadoNoCambiaNada(t *testing.T) {
	env := newEnv(t)
	creado, err := env.uc.Crear(context.Background(), idAdmin, dto.CrearConteoRequest{
		IDCentro: "S001", Detalles: detalles(),
	})
	require.NoError(t, err)

	centro := "S002"
	_, err = env.uc.Editar(context.Background(), idAdmin, creado.ID, dto.EditarConteoRequest{IDCentro: &centro})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Releer: ningún campo cambió.
	actual, err := env.uc.Obtener(context.Background(), idAdmin, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "S001", actual.IDCentro)
	assert.Equal(t, int16(entity.EnvioFinalizado), actual.Envio)
	assert.Len(t, actual.Detalles, 2)
}

func TestEditar_RolesProhibidos(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	centro := "S002"
	for _, caller := range []int64{idCCA, idApp} {
		_, err := env.uc.Editar(context.Background(), caller, id, dto.EditarConteoRequest{IDCentro: &centro})
		assert.ErrorIs(t, err, domain.ErrForbidden, "caller %d", caller)
	}
}

func TestEditar_ConteoInexistente(t *testing.T) {
	env := newEnv(t)
	centro := "S001"
	_, err := env.uc.Editar(context.Background(), idAdmin, 12345, dto.EditarConteoRequest{IDCentro: &centro})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contestar
// ──────────────────────────────────────────────────────────────────────────────

func respuestas() dto.ContestarConteoRequest {
	return dto.ContestarConteoRequest{Detalles: []dto.RespuestaDetalleRequest{
		{IDProducto: "P-100", ExistenciaFisica: dec(9)},
		{IDProducto: "P-200", ExistenciaFisica: dec(5)},
	}}
}

func TestContestar_ActualizaFisicasYFinaliza(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	out, err := env.uc.Contestar(context.Background(), idApp, id, respuestas())
	require.NoError(t, err)

	assert.Equal(t, int16(entity.EnvioFinalizado), out.Envio)
	require.Len(t, out.Detalles, 2)
	for _, d := range out.Detalles {
		require.NotNil(t, d.ExistenciaFisica, "producto %s", d.IDProducto)
	}
	assert.True(t, out.Detalles[0].ExistenciaFisica.Equal(dec(9)))
	assert.True(t, out.Detalles[0].ExistenciaTeorica.Equal(dec(10)), "la teórica es inmutable")

	// Segundo intento sobre el conteo ya finalizado.
	_, err = env.uc.Contestar(context.Background(), idApp, id, respuestas())
	assert.ErrorIs(t, err, domain.ErrInvalidState, "no hay reapertura")
}

func TestContestar_ProductoDesconocido(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	_, err := env.uc.Contestar(context.Background(), idApp, id, dto.ContestarConteoRequest{
		Detalles: []dto.RespuestaDetalleRequest{
			{IDProducto: "P-100", ExistenciaFisica: dec(9)},
			{IDProducto: "P-999", ExistenciaFisica: dec(1)}, // no pertenece al conteo
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	// Todo o nada: ni siquiera P-100 se actualizó y el conteo sigue pendiente.
	actual, err := env.uc.Obtener(context.Background(), idAdmin, id)
	require.NoError(t, err)
	assert.Equal(t, int16(entity.EnvioPendiente), actual.Envio)
	for _, d := range actual.Detalles {
		assert.Nil(t, d.ExistenciaFisica, "producto %s", d.IDProducto)
	}
}

func TestContestar_CoberturaIncompleta(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	_, err := env.uc.Contestar(context.Background(), idApp, id, dto.ContestarConteoRequest{
		Detalles: []dto.RespuestaDetalleRequest{{IDProducto: "P-100", ExistenciaFisica: dec(9)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload, "falta P-200")
}

func TestContestar_ProductoRepetido(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	_, err := env.uc.Contestar(context.Background(), idApp, id, dto.ContestarConteoRequest{
		Detalles: []dto.RespuestaDetalleRequest{
			{IDProducto: "P-100", ExistenciaFisica: dec(9)},
			{IDProducto: "P-100", ExistenciaFisica: dec(8)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar / Obtener
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_SoloAdministrador(t *testing.T) {
	env := newEnv(t)
	id := asignarPendiente(t, env)

	for _, caller := range []int64{idSupervisor, idCCA, idApp} {
		err := env.uc.Eliminar(context.Background(), caller, id)
		assert.ErrorIs(t, err, domain.ErrForbidden, "caller %d", caller)
	}
}

func TestEliminar_Inexistente(t *testing.T) {
	env := newEnv(t)
	err := env.uc.Eliminar(context.Background(), idAdmin, 777)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEliminar_PendienteYFinalizado(t *testing.T) {
	env := newEnv(t)
	pendiente := asignarPendiente(t, env)
	creado, err := env.uc.Crear(context.Background(), idAdmin, dto.CrearConteoRequest{
		IDCentro: "S001", Detalles: detalles(),
	})
	require.NoError(t, err)

	// Sin precondición de estado: ambos se eliminan.
	require.NoError(t, env.uc.Eliminar(context.Background(), idAdmin, pendiente))
	require.NoError(t, env.uc.Eliminar(context.Background(), idAdmin, creado.ID))

	_, err = env.uc.Obtener(context.Background(), idAdmin, pendiente)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = env.uc.Obtener(context.Background(), idAdmin, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObtener_Inexistente(t *testing.T) {
	env := newEnv(t)
	_, err := env.uc.Obtener(context.Background(), idApp, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar
// ──────────────────────────────────────────────────────────────────────────────

// sembrar crea 5 conteos: 3 pendientes en S001 (asignados a idApp) y 2
// finalizados en S002 (de idSupervisor).
func sembrar(t *testing.T, env *engineEnv) {
	t.Helper()
	for i := 0; i < 3; i++ {
		_, err := env.uc.Asignar(context.Background(), idSupervisor, dto.AsignarConteoRequest{
			IDCentro:    "S001",
			IDUsuario:   idApp,
			FechaConteo: fechaRelativa(1),
			Detalles:    detalles(),
		})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := env.uc.Crear(context.Background(), idSupervisor, dto.CrearConteoRequest{
			IDCentro: "S002", Detalles: detalles(),
		})
		require.NoError(t, err)
	}
}

func TestListar_FiltroPorEstado(t *testing.T) {
	env := newEnv(t)
	sembrar(t, env)

	pendiente := entity.EnvioPendiente
	out, err := env.uc.Listar(context.Background(), idApp, repository.ConteoFiltro{Envio: &pendiente})
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	for _, item := range out.Items {
		assert.Equal(t, int16(entity.EnvioPendiente), item.Envio)
	}
}

func TestListar_FiltrosCombinados(t *testing.T) {
	env := newEnv(t)
	sembrar(t, env)

	centro := "S001"
	pendiente := entity.EnvioPendiente
	usuario := idApp
	out, err := env.uc.Listar(context.Background(), idAdmin, repository.ConteoFiltro{
		IDCentro:  &centro,
		Envio:     &pendiente,
		IDUsuario: &usuario,
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 3, "intersección de los tres filtros")

	// Combinación sin coincidencias: lista vacía, nunca error.
	finalizado := entity.EnvioFinalizado
	out, err = env.uc.Listar(context.Background(), idAdmin, repository.ConteoFiltro{
		IDCentro: &centro,
		Envio:    &finalizado,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestListar_Paginacion(t *testing.T) {
	env := newEnv(t)
	sembrar(t, env) // ids 1..5 en orden de creación

	out, err := env.uc.Listar(context.Background(), idAdmin, repository.ConteoFiltro{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(3), out.Items[0].ID, "skip=2, limit=2 devuelve el tercero y cuarto")
	assert.Equal(t, int64(4), out.Items[1].ID)
	assert.Equal(t, 2, out.Page.Limit)
	assert.Equal(t, 2, out.Page.Offset)
}

func TestListar_LimiteAcotado(t *testing.T) {
	env := newEnv(t)
	sembrar(t, env)

	out, err := env.uc.Listar(context.Background(), idAdmin, repository.ConteoFiltro{Limit: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1000, out.Page.Limit, "el límite se acota al máximo de página")
	assert.Len(t, out.Items, 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

// Supervisor asigna a App para mañana → App contesta → Supervisor intenta
// editar (conflicto) → Administrador elimina → Obtener falla.
func TestFlujoCompleto(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	asignado, err := env.uc.Asignar(ctx, idSupervisor, dto.AsignarConteoRequest{
		IDCentro:    "S001",
		IDUsuario:   idApp,
		FechaConteo: fechaRelativa(1),
		Detalles:    detalles(),
	})
	require.NoError(t, err)
	assert.Equal(t, int16(entity.EnvioPendiente), asignado.Envio)

	contestado, err := env.uc.Contestar(ctx, idApp, asignado.ID, respuestas())
	require.NoError(t, err)
	assert.Equal(t, int16(entity.EnvioFinalizado), contestado.Envio)

	centro := "S002"
	_, err = env.uc.Editar(ctx, idSupervisor, asignado.ID, dto.EditarConteoRequest{IDCentro: &centro})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	require.NoError(t, env.uc.Eliminar(ctx, idAdmin, asignado.ID))

	_, err = env.uc.Obtener(ctx, idSupervisor, asignado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sucursales
// ──────────────────────────────────────────────────────────────────────────────

func TestSucursales_ListaReferencia(t *testing.T) {
	env := newEnv(t)
	out, err := env.uc.Sucursales(context.Background(), idApp)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
