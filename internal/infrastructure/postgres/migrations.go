package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scisp/conteos-api/pkg/logger"
)

// migrations DDL idempotente del esquema de conteos, en orden de dependencia.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id_usuario     BIGINT PRIMARY KEY,
		nombre_usuario TEXT NOT NULL,
		contrasena     TEXT NOT NULL,
		nivel_usuario  SMALLINT NOT NULL,
		estatus        SMALLINT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS sucursales (
		id_centro TEXT PRIMARY KEY,
		sucursal  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS conteos (
		id           BIGSERIAL PRIMARY KEY,
		id_centro    TEXT NOT NULL REFERENCES sucursales(id_centro),
		fecha_conteo DATE NOT NULL,
		id_realizo   BIGINT NOT NULL REFERENCES usuarios(id_usuario),
		id_usuario   BIGINT NOT NULL REFERENCES usuarios(id_usuario),
		envio        SMALLINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS conteo_detalles (
		id                 BIGSERIAL PRIMARY KEY,
		conteo_id          BIGINT NOT NULL REFERENCES conteos(id) ON DELETE CASCADE,
		id_producto        TEXT NOT NULL,
		existencia_teorica NUMERIC(14,4) NOT NULL,
		existencia_fisica  NUMERIC(14,4)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conteos_centro ON conteos(id_centro)`,
	`CREATE INDEX IF NOT EXISTS idx_conteos_usuario ON conteos(id_usuario)`,
	`CREATE INDEX IF NOT EXISTS idx_conteos_envio ON conteos(envio)`,
	`CREATE INDEX IF NOT EXISTS idx_detalles_conteo ON conteo_detalles(conteo_id)`,
}

// RunMigrations aplica el esquema al arranque. Cada sentencia es idempotente,
// así que reejecutar en cada despliegue es seguro.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	log.Info().Int("sentencias", len(migrations)).Msg("esquema verificado")
	return nil
}
