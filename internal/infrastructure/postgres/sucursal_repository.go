package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo implementación del puerto SucursalRepository sobre PostgreSQL.
type SucursalRepo struct {
	db DB
}

// NewSucursalRepository construye el adaptador de persistencia para sucursales.
func NewSucursalRepository(db DB) *SucursalRepo {
	return &SucursalRepo{db: db}
}

// GetByID obtiene una sucursal por id de centro. Devuelve nil sin error si no existe.
func (r *SucursalRepo) GetByID(ctx context.Context, idCentro string) (*entity.Sucursal, error) {
	query := `SELECT id_centro, sucursal FROM sucursales WHERE id_centro = $1`
	var s entity.Sucursal
	err := r.db.QueryRow(ctx, query, idCentro).Scan(&s.IDCentro, &s.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal: %w", err)
	}
	return &s, nil
}

// List lista todas las sucursales.
func (r *SucursalRepo) List(ctx context.Context) ([]*entity.Sucursal, error) {
	rows, err := r.db.Query(ctx, `SELECT id_centro, sucursal FROM sucursales ORDER BY id_centro`)
	if err != nil {
		return nil, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sucursal
	for rows.Next() {
		var s entity.Sucursal
		if err := rows.Scan(&s.IDCentro, &s.Nombre); err != nil {
			return nil, fmt.Errorf("scan sucursal: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
