package repository

import (
	"context"

	"github.com/scisp/conteos-api/internal/domain/entity"
)

// ConteoFiltro filtros combinables (AND) para el listado de conteos, más
// paginación skip/limit. Los punteros en nil no filtran.
type ConteoFiltro struct {
	IDCentro  *string
	Envio     *entity.Envio
	IDUsuario *int64
	Limit     int
	Offset    int
}

// ConteoRepository define el puerto de persistencia para Conteo y sus detalles (DIP).
// GetByID devuelve nil (sin error) si el conteo no existe. Las mutaciones de varios
// pasos corren dentro de la transacción que provee el TxRunner del motor.
type ConteoRepository interface {
	// Create inserta el conteo y sus detalles; asigna IDs generados por la BD.
	Create(ctx context.Context, c *entity.Conteo) error
	// GetByID carga el conteo con detalle completo.
	GetByID(ctx context.Context, id int64) (*entity.Conteo, error)
	// Update reescribe la cabecera y reemplaza los detalles.
	Update(ctx context.Context, c *entity.Conteo) error
	// UpdateExistencias escribe la existencia física de cada detalle y el estado.
	UpdateExistencias(ctx context.Context, c *entity.Conteo) error
	// Delete elimina conteo y detalles; devuelve false si el id no existía.
	Delete(ctx context.Context, id int64) (bool, error)
	// List devuelve conteos en orden de creación (id ascendente).
	List(ctx context.Context, f ConteoFiltro) ([]*entity.Conteo, error)
}
