package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scisp/conteos-api/internal/application/conteo"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

var _ conteo.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks del motor de conteos dentro de una transacción
// PostgreSQL. El aislamiento de la BD resuelve carreras entre requests sobre
// el mismo conteo: el estado final refleja exactamente una de las operaciones.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repositorio atado a la tx y
// hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(conteos repository.ConteoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewConteoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
