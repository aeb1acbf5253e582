package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scisp/conteos-api/internal/application/conteo"
	"github.com/scisp/conteos-api/internal/application/dto"
	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

// ConteoHandler maneja las peticiones HTTP del ciclo de vida de conteos.
type ConteoHandler struct {
	uc *conteo.ConteoUseCase
}

// NewConteoHandler construye el handler.
func NewConteoHandler(uc *conteo.ConteoUseCase) *ConteoHandler {
	return &ConteoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear conteo (autoasignado, queda finalizado)
// @Tags         conteos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearConteoRequest  true  "centro y detalles"
// @Success      201   {object}  dto.ConteoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/conteos/crear [post]
func (h *ConteoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearConteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Asignar godoc
// @Summary      Asignar conteo a otro usuario (queda pendiente)
// @Tags         conteos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarConteoRequest  true  "centro, asignado, fecha y detalles"
// @Success      201   {object}  dto.ConteoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/conteos/asignar [post]
func (h *ConteoHandler) Asignar(c *fiber.Ctx) error {
	var in dto.AsignarConteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Asignar(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Editar godoc
// @Summary      Editar conteo pendiente
// @Tags         conteos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del conteo"
// @Param        body  body  dto.EditarConteoRequest  true  "campos a reemplazar"
// @Success      200   {object}  dto.ConteoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/conteos/{id}/editar [put]
func (h *ConteoHandler) Editar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de conteo inválido"})
	}
	var in dto.EditarConteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Editar(c.Context(), GetUserID(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contestar godoc
// @Summary      Contestar conteo (existencias físicas; queda finalizado)
// @Tags         conteos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del conteo"
// @Param        body  body  dto.ContestarConteoRequest  true  "existencia física por producto"
// @Success      200   {object}  dto.ConteoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/conteos/{id}/contestar [put]
func (h *ConteoHandler) Contestar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de conteo inválido"})
	}
	var in dto.ContestarConteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Contestar(c.Context(), GetUserID(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar conteo y sus detalles
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del conteo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conteos/{id} [delete]
func (h *ConteoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de conteo inválido"})
	}
	if err := h.uc.Eliminar(c.Context(), GetUserID(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Message: "conteo eliminado correctamente"})
}

// Obtener godoc
// @Summary      Obtener conteo por ID con detalle completo
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del conteo"
// @Success      200  {object}  dto.ConteoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conteos/{id} [get]
func (h *ConteoHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de conteo inválido"})
	}
	out, err := h.uc.Obtener(c.Context(), GetUserID(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar conteos con filtros y paginación
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Param        id_centro   query  string  false  "Filtrar por centro"
// @Param        envio       query  int     false  "Filtrar por estado (0=pendiente, 1=finalizado)"
// @Param        id_usuario  query  int     false  "Filtrar por usuario asignado"
// @Param        limit       query  int     false  "Máximo de registros"  default(100)
// @Param        offset      query  int     false  "Registros a omitir"   default(0)
// @Success      200  {object}  dto.ConteoListResponse
// @Router       /api/conteos [get]
func (h *ConteoHandler) Listar(c *fiber.Ctx) error {
	f, ok := filtroFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "envio debe ser 0 o 1"})
	}
	out, err := h.uc.Listar(c.Context(), GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PorUsuario godoc
// @Summary      Conteos asignados a un usuario
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Param        user_id  path   int  true   "ID del usuario asignado"
// @Param        envio    query  int  false  "Filtrar por estado"
// @Success      200  {object}  dto.ConteoListResponse
// @Router       /api/conteos/usuario/{user_id} [get]
func (h *ConteoHandler) PorUsuario(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de usuario inválido"})
	}
	f, ok := filtroFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "envio debe ser 0 o 1"})
	}
	id := int64(userID)
	f.IDUsuario = &id
	out, err := h.uc.Listar(c.Context(), GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PorSucursal godoc
// @Summary      Conteos de una sucursal
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Param        centro_id  path   string  true   "ID del centro"
// @Param        envio      query  int     false  "Filtrar por estado"
// @Success      200  {object}  dto.ConteoListResponse
// @Router       /api/conteos/sucursal/{centro_id} [get]
func (h *ConteoHandler) PorSucursal(c *fiber.Ctx) error {
	centro := c.Params("centro_id")
	if centro == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de centro requerido"})
	}
	f, ok := filtroFromQuery(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "envio debe ser 0 o 1"})
	}
	f.IDCentro = &centro
	out, err := h.uc.Listar(c.Context(), GetUserID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sucursales godoc
// @Summary      Sucursales disponibles
// @Tags         conteos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SucursalResponse
// @Router       /api/conteos/sucursales [get]
func (h *ConteoHandler) Sucursales(c *fiber.Ctx) error {
	out, err := h.uc.Sucursales(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// filtroFromQuery arma el filtro de listado desde la query string.
// El segundo retorno es false si envio trae un valor fuera de {0,1}.
func filtroFromQuery(c *fiber.Ctx) (repository.ConteoFiltro, bool) {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 100),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	f := repository.ConteoFiltro{
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if v := c.Query("id_centro"); v != "" {
		f.IDCentro = &v
	}
	if v := c.Query("envio"); v != "" {
		e := entity.Envio(c.QueryInt("envio", -1))
		if !e.Valido() {
			return f, false
		}
		f.Envio = &e
	}
	if v := c.QueryInt("id_usuario", 0); v > 0 {
		id := int64(v)
		f.IDUsuario = &id
	}
	return f, true
}
