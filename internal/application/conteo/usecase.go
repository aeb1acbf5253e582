package conteo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/scisp/conteos-api/internal/application/dto"
	"github.com/scisp/conteos-api/internal/domain"
	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
	"github.com/scisp/conteos-api/internal/domain/role"
)

// ConteoUseCase es el motor del ciclo de vida de los conteos: valida rol,
// estado y payload de cada operación y persiste las mutaciones de forma
// atómica vía TxRunner. Dos estados (pendiente/finalizado); la eliminación
// es una salida de la máquina, no un estado.
type ConteoUseCase struct {
	tx         TxRunner
	conteos    repository.ConteoRepository // lecturas fuera de transacción
	usuarios   repository.UsuarioRepository
	sucursales repository.SucursalRepository
	logger     zerolog.Logger
}

// NewConteoUseCase construye el motor de conteos.
func NewConteoUseCase(
	tx TxRunner,
	conteos repository.ConteoRepository,
	usuarios repository.UsuarioRepository,
	sucursales repository.SucursalRepository,
	logger zerolog.Logger,
) *ConteoUseCase {
	return &ConteoUseCase{
		tx:         tx,
		conteos:    conteos,
		usuarios:   usuarios,
		sucursales: sucursales,
		logger:     logger,
	}
}

// autorizar carga al caller desde almacenamiento y lo valida contra la tabla
// de políticas. El chequeo de rol del middleware HTTP es de primera línea;
// este es el autoritativo (considera estatus actual del usuario).
func (uc *ConteoUseCase) autorizar(ctx context.Context, callerID int64, op role.Operacion) (*entity.Usuario, error) {
	user, err := uc.usuarios.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := role.Autorizar(user, op); err != nil {
		return nil, err
	}
	return user, nil
}

// validarSucursal verifica que el centro exista.
func (uc *ConteoUseCase) validarSucursal(ctx context.Context, idCentro string) error {
	s, err := uc.sucursales.GetByID(ctx, idCentro)
	if err != nil {
		return fmt.Errorf("buscar sucursal: %w", err)
	}
	if s == nil {
		return domain.ErrBranchNotFound
	}
	return nil
}

// validarAsignado verifica que el usuario asignado exista y esté activo.
func (uc *ConteoUseCase) validarAsignado(ctx context.Context, idUsuario int64) error {
	u, err := uc.usuarios.GetByID(ctx, idUsuario)
	if err != nil {
		return fmt.Errorf("buscar usuario asignado: %w", err)
	}
	if !u.Activo() {
		return domain.ErrUserNotFound
	}
	return nil
}

// Crear registra un conteo que el propio caller levanta y reporta de inmediato:
// solicitante y asignado son el caller, la fecha es la del sistema y el estado
// queda finalizado sin importar lo que traiga el payload.
func (uc *ConteoUseCase) Crear(ctx context.Context, callerID int64, in dto.CrearConteoRequest) (*dto.ConteoResponse, error) {
	caller, err := uc.autorizar(ctx, callerID, role.OpCrear)
	if err != nil {
		return nil, err
	}
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarSucursal(ctx, in.IDCentro); err != nil {
		return nil, err
	}

	c := &entity.Conteo{
		IDCentro:    in.IDCentro,
		FechaConteo: hoy(),
		IDRealizo:   caller.ID,
		IDUsuario:   caller.ID,
		Envio:       entity.EnvioFinalizado,
		Detalles:    toDetalles(in.Detalles),
	}
	if err := uc.tx.Run(ctx, func(repo repository.ConteoRepository) error {
		return repo.Create(ctx, c)
	}); err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("conteo_id", c.ID).Int64("usuario", caller.ID).
		Str("centro", c.IDCentro).Msg("conteo creado y finalizado")
	return toConteoResponse(c), nil
}

// Asignar registra un conteo pendiente para que otro usuario lo conteste.
// La fecha debe ser hoy o posterior (comparación solo de fecha, sin hora).
func (uc *ConteoUseCase) Asignar(ctx context.Context, callerID int64, in dto.AsignarConteoRequest) (*dto.ConteoResponse, error) {
	caller, err := uc.autorizar(ctx, callerID, role.OpAsignar)
	if err != nil {
		return nil, err
	}
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validarSucursal(ctx, in.IDCentro); err != nil {
		return nil, err
	}
	if err := uc.validarAsignado(ctx, in.IDUsuario); err != nil {
		return nil, err
	}
	fecha, err := parseFecha(in.FechaConteo)
	if err != nil {
		return nil, err
	}
	if fecha.Before(hoy()) {
		return nil, domain.ErrInvalidDate
	}

	c := &entity.Conteo{
		IDCentro:    in.IDCentro,
		FechaConteo: fecha,
		IDRealizo:   caller.ID,
		IDUsuario:   in.IDUsuario,
		Envio:       entity.EnvioPendiente,
		Detalles:    toDetalles(in.Detalles),
	}
	if err := uc.tx.Run(ctx, func(repo repository.ConteoRepository) error {
		return repo.Create(ctx, c)
	}); err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("conteo_id", c.ID).Int64("realizo", caller.ID).
		Int64("asignado", c.IDUsuario).Str("centro", c.IDCentro).Msg("conteo asignado")
	return toConteoResponse(c), nil
}

// Editar reemplaza parcialmente los campos de un conteo pendiente. Un conteo
// finalizado no admite cambio alguno (ni de detalles). El solicitante original
// se conserva: quien edita no pasa a ser el realizador.
func (uc *ConteoUseCase) Editar(ctx context.Context, callerID int64, conteoID int64, in dto.EditarConteoRequest) (*dto.ConteoResponse, error) {
	if _, err := uc.autorizar(ctx, callerID, role.OpEditar); err != nil {
		return nil, err
	}
	// Referencias nuevas se validan antes de abrir la transacción.
	if in.IDCentro != nil {
		if err := uc.validarSucursal(ctx, *in.IDCentro); err != nil {
			return nil, err
		}
	}
	if in.IDUsuario != nil {
		if err := uc.validarAsignado(ctx, *in.IDUsuario); err != nil {
			return nil, err
		}
	}
	var fecha *time.Time
	if in.FechaConteo != nil {
		f, err := parseFecha(*in.FechaConteo)
		if err != nil {
			return nil, err
		}
		fecha = &f
	}

	var c *entity.Conteo
	err := uc.tx.Run(ctx, func(repo repository.ConteoRepository) error {
		var err error
		c, err = repo.GetByID(ctx, conteoID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if !c.Envio.PuedeEditar() {
			return domain.ErrInvalidState
		}
		if in.IDCentro != nil {
			c.IDCentro = *in.IDCentro
		}
		if in.IDUsuario != nil {
			c.IDUsuario = *in.IDUsuario
		}
		if fecha != nil {
			c.FechaConteo = *fecha
		}
		if in.Detalles != nil {
			c.Detalles = toDetalles(*in.Detalles)
			for i := range c.Detalles {
				c.Detalles[i].ConteoID = c.ID
			}
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("conteo_id", c.ID).Int64("editor", callerID).Msg("conteo editado")
	return toConteoResponse(c), nil
}

// Contestar registra las existencias físicas de un conteo pendiente y lo
// finaliza. El payload debe cubrir cada producto existente exactamente una
// vez: un producto desconocido, faltante o repetido rechaza la operación
// completa sin persistir nada. La transición a finalizado es irreversible.
func (uc *ConteoUseCase) Contestar(ctx context.Context, callerID int64, conteoID int64, in dto.ContestarConteoRequest) (*dto.ConteoResponse, error) {
	if _, err := uc.autorizar(ctx, callerID, role.OpContestar); err != nil {
		return nil, err
	}

	respuestas := make(map[string]decimal.Decimal, len(in.Detalles))
	for _, d := range in.Detalles {
		if _, dup := respuestas[d.IDProducto]; dup {
			return nil, domain.ErrInvalidPayload
		}
		respuestas[d.IDProducto] = d.ExistenciaFisica
	}

	var c *entity.Conteo
	err := uc.tx.Run(ctx, func(repo repository.ConteoRepository) error {
		var err error
		c, err = repo.GetByID(ctx, conteoID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if !c.Envio.PuedeContestar() {
			return domain.ErrInvalidState
		}
		// Cobertura exacta: mismo número de respuestas que de detalles y
		// cada respuesta corresponde a un producto del conteo.
		if len(respuestas) != len(c.Detalles) {
			return domain.ErrInvalidPayload
		}
		for i := range c.Detalles {
			fisica, ok := respuestas[c.Detalles[i].IDProducto]
			if !ok {
				return domain.ErrInvalidPayload
			}
			c.Detalles[i].ExistenciaFisica = decimal.NewNullDecimal(fisica)
		}
		c.Envio = entity.EnvioFinalizado
		return repo.UpdateExistencias(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().Int64("conteo_id", c.ID).Int64("contesto", callerID).Msg("conteo contestado y finalizado")
	return toConteoResponse(c), nil
}

// Eliminar borra el conteo y todos sus detalles como una sola unidad atómica.
// No hay precondición de estado: pendientes y finalizados se eliminan igual.
func (uc *ConteoUseCase) Eliminar(ctx context.Context, callerID int64, conteoID int64) error {
	if _, err := uc.autorizar(ctx, callerID, role.OpEliminar); err != nil {
		return err
	}
	err := uc.tx.Run(ctx, func(repo repository.ConteoRepository) error {
		ok, err := repo.Delete(ctx, conteoID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.logger.Info().Int64("conteo_id", conteoID).Int64("usuario", callerID).Msg("conteo eliminado")
	return nil
}

// Obtener devuelve un conteo con detalle completo.
func (uc *ConteoUseCase) Obtener(ctx context.Context, callerID int64, conteoID int64) (*dto.ConteoResponse, error) {
	if _, err := uc.autorizar(ctx, callerID, role.OpObtener); err != nil {
		return nil, err
	}
	c, err := uc.conteos.GetByID(ctx, conteoID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toConteoResponse(c), nil
}

// Listar devuelve conteos en orden de creación con filtros combinables
// (centro, estado, usuario asignado) y paginación skip/limit. Una combinación
// sin coincidencias devuelve una lista vacía, nunca error.
func (uc *ConteoUseCase) Listar(ctx context.Context, callerID int64, f repository.ConteoFiltro) (*dto.ConteoListResponse, error) {
	if _, err := uc.autorizar(ctx, callerID, role.OpListar); err != nil {
		return nil, err
	}
	if f.Envio != nil && !f.Envio.Valido() {
		return nil, domain.ErrInvalidInput
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	if f.Limit > 1000 {
		f.Limit = 1000
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	list, err := uc.conteos.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConteoResumenResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toConteoResumen(c))
	}
	return &dto.ConteoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Sucursales lista las sucursales disponibles para levantar conteos.
func (uc *ConteoUseCase) Sucursales(ctx context.Context, callerID int64) ([]dto.SucursalResponse, error) {
	if _, err := uc.autorizar(ctx, callerID, role.OpListar); err != nil {
		return nil, err
	}
	list, err := uc.sucursales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SucursalResponse{IDCentro: s.IDCentro, Sucursal: s.Nombre})
	}
	return out, nil
}

// hoy devuelve la fecha del sistema truncada a día (UTC).
func hoy() time.Time {
	return soloFecha(time.Now().UTC())
}

func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseFecha interpreta YYYY-MM-DD; un formato inválido es error de entrada,
// no de regla de fechas.
func parseFecha(s string) (time.Time, error) {
	f, err := time.ParseInLocation(dto.FechaFormato, s, time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return f, nil
}

func toDetalles(in []dto.DetalleRequest) []entity.ConteoDetalle {
	out := make([]entity.ConteoDetalle, 0, len(in))
	for _, d := range in {
		out = append(out, entity.ConteoDetalle{
			IDProducto:        d.IDProducto,
			ExistenciaTeorica: d.ExistenciaTeorica,
		})
	}
	return out
}

func toConteoResponse(c *entity.Conteo) *dto.ConteoResponse {
	if c == nil {
		return nil
	}
	detalles := make([]dto.DetalleResponse, 0, len(c.Detalles))
	for _, d := range c.Detalles {
		var fisica *decimal.Decimal
		if d.ExistenciaFisica.Valid {
			v := d.ExistenciaFisica.Decimal
			fisica = &v
		}
		detalles = append(detalles, dto.DetalleResponse{
			ID:                d.ID,
			IDProducto:        d.IDProducto,
			ExistenciaTeorica: d.ExistenciaTeorica,
			ExistenciaFisica:  fisica,
		})
	}
	return &dto.ConteoResponse{
		ID:          c.ID,
		IDCentro:    c.IDCentro,
		FechaConteo: c.FechaConteo.Format(dto.FechaFormato),
		IDRealizo:   c.IDRealizo,
		IDUsuario:   c.IDUsuario,
		Envio:       int16(c.Envio),
		Estado:      c.Envio.String(),
		Detalles:    detalles,
	}
}

func toConteoResumen(c *entity.Conteo) dto.ConteoResumenResponse {
	return dto.ConteoResumenResponse{
		ID:             c.ID,
		IDCentro:       c.IDCentro,
		FechaConteo:    c.FechaConteo.Format(dto.FechaFormato),
		IDRealizo:      c.IDRealizo,
		IDUsuario:      c.IDUsuario,
		Envio:          int16(c.Envio),
		Estado:         c.Envio.String(),
		TotalProductos: len(c.Detalles),
	}
}
