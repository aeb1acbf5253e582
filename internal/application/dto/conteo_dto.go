package dto

import "github.com/shopspring/decimal"

// FechaFormato formato de fecha (solo día) usado en requests y responses.
const FechaFormato = "2006-01-02"

// DetalleRequest línea de producto al crear/asignar/editar un conteo.
type DetalleRequest struct {
	IDProducto        string          `json:"id_producto" validate:"required"`
	ExistenciaTeorica decimal.Decimal `json:"existencia_teorica"`
}

// CrearConteoRequest conteo que el propio usuario levanta y reporta de inmediato.
// La fecha la pone el servidor y el estado queda finalizado, ignore lo que mande el caller.
type CrearConteoRequest struct {
	IDCentro string           `json:"id_centro" validate:"required"`
	Detalles []DetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

// AsignarConteoRequest conteo asignado a otro usuario para contestar después.
type AsignarConteoRequest struct {
	IDCentro    string           `json:"id_centro" validate:"required"`
	IDUsuario   int64            `json:"id_usuario" validate:"required"`
	FechaConteo string           `json:"fecha_conteo" validate:"required"` // YYYY-MM-DD, hoy o posterior
	Detalles    []DetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

// EditarConteoRequest reemplazo parcial de campos de un conteo pendiente.
// Los campos en nil no se tocan; el solicitante original se conserva.
type EditarConteoRequest struct {
	IDCentro    *string           `json:"id_centro"`
	IDUsuario   *int64            `json:"id_usuario"`
	FechaConteo *string           `json:"fecha_conteo"` // YYYY-MM-DD
	Detalles    *[]DetalleRequest `json:"detalles"`
}

// RespuestaDetalleRequest existencia física contada para un producto del conteo.
type RespuestaDetalleRequest struct {
	IDProducto       string          `json:"id_producto" validate:"required"`
	ExistenciaFisica decimal.Decimal `json:"existencia_fisica"`
}

// ContestarConteoRequest respuestas de un conteo: una por cada producto existente.
type ContestarConteoRequest struct {
	Detalles []RespuestaDetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

// DetalleResponse línea de producto en respuestas.
type DetalleResponse struct {
	ID                int64            `json:"id"`
	IDProducto        string           `json:"id_producto"`
	ExistenciaTeorica decimal.Decimal  `json:"existencia_teorica"`
	ExistenciaFisica  *decimal.Decimal `json:"existencia_fisica"` // null hasta contestar
}

// ConteoResponse conteo con detalle completo.
type ConteoResponse struct {
	ID          int64             `json:"id"`
	IDCentro    string            `json:"id_centro"`
	FechaConteo string            `json:"fecha_conteo"`
	IDRealizo   int64             `json:"id_realizo"`
	IDUsuario   int64             `json:"id_usuario"`
	Envio       int16             `json:"envio"`
	Estado      string            `json:"estado"` // "pendiente" | "finalizado"
	Detalles    []DetalleResponse `json:"detalles"`
}

// ConteoResumenResponse resumen para listados.
type ConteoResumenResponse struct {
	ID             int64  `json:"id"`
	IDCentro       string `json:"id_centro"`
	FechaConteo    string `json:"fecha_conteo"`
	IDRealizo      int64  `json:"id_realizo"`
	IDUsuario      int64  `json:"id_usuario"`
	Envio          int16  `json:"envio"`
	Estado         string `json:"estado"`
	TotalProductos int    `json:"total_productos"`
}

// ConteoListResponse página de resúmenes de conteos.
type ConteoListResponse struct {
	Items []ConteoResumenResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
