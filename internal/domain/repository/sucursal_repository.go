package repository

import (
	"context"

	"github.com/scisp/conteos-api/internal/domain/entity"
)

// SucursalRepository define el puerto de persistencia para Sucursal (DIP).
// Datos de referencia, solo lectura.
type SucursalRepository interface {
	GetByID(ctx context.Context, idCentro string) (*entity.Sucursal, error)
	List(ctx context.Context) ([]*entity.Sucursal, error)
}
