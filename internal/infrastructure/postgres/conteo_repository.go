package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

var _ repository.ConteoRepository = (*ConteoRepo)(nil)

// ConteoRepo implementación del puerto ConteoRepository sobre PostgreSQL.
// Acepta tanto el pool como una transacción (ver DB); el motor lo usa atado
// a una tx para toda mutación.
type ConteoRepo struct {
	db DB
}

// NewConteoRepository construye el adaptador de persistencia para conteos.
func NewConteoRepository(db DB) *ConteoRepo {
	return &ConteoRepo{db: db}
}

// Create inserta el conteo y sus detalles, asignando los IDs generados.
func (r *ConteoRepo) Create(ctx context.Context, c *entity.Conteo) error {
	query := `
		INSERT INTO conteos (id_centro, fecha_conteo, id_realizo, id_usuario, envio)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		c.IDCentro, c.FechaConteo, c.IDRealizo, c.IDUsuario, int16(c.Envio),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert conteo: %w", err)
	}
	return r.insertDetalles(ctx, c)
}

func (r *ConteoRepo) insertDetalles(ctx context.Context, c *entity.Conteo) error {
	query := `
		INSERT INTO conteo_detalles (conteo_id, id_producto, existencia_teorica, existencia_fisica)
		VALUES ($1, $2, $3, $4) RETURNING id`
	for i := range c.Detalles {
		d := &c.Detalles[i]
		d.ConteoID = c.ID
		if err := r.db.QueryRow(ctx, query,
			c.ID, d.IDProducto, d.ExistenciaTeorica, d.ExistenciaFisica,
		).Scan(&d.ID); err != nil {
			return fmt.Errorf("insert detalle: %w", err)
		}
	}
	return nil
}

// GetByID carga el conteo con sus detalles en orden de inserción.
// Devuelve nil sin error si el id no existe.
func (r *ConteoRepo) GetByID(ctx context.Context, id int64) (*entity.Conteo, error) {
	query := `
		SELECT id, id_centro, fecha_conteo, id_realizo, id_usuario, envio
		FROM conteos WHERE id = $1`
	var c entity.Conteo
	var envio int16
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.IDCentro, &c.FechaConteo, &c.IDRealizo, &c.IDUsuario, &envio,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conteo: %w", err)
	}
	c.Envio = entity.Envio(envio)

	detalles, err := r.detallesDe(ctx, []int64{c.ID})
	if err != nil {
		return nil, err
	}
	c.Detalles = detalles[c.ID]
	return &c, nil
}

// Update reescribe la cabecera del conteo y reemplaza sus detalles.
func (r *ConteoRepo) Update(ctx context.Context, c *entity.Conteo) error {
	query := `
		UPDATE conteos SET id_centro = $2, fecha_conteo = $3, id_realizo = $4, id_usuario = $5, envio = $6
		WHERE id = $1`
	if _, err := r.db.Exec(ctx, query,
		c.ID, c.IDCentro, c.FechaConteo, c.IDRealizo, c.IDUsuario, int16(c.Envio),
	); err != nil {
		return fmt.Errorf("update conteo: %w", err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM conteo_detalles WHERE conteo_id = $1`, c.ID); err != nil {
		return fmt.Errorf("delete detalles: %w", err)
	}
	return r.insertDetalles(ctx, c)
}

// UpdateExistencias escribe la existencia física de cada detalle y el estado
// del conteo. No toca id_producto ni existencia_teorica.
func (r *ConteoRepo) UpdateExistencias(ctx context.Context, c *entity.Conteo) error {
	if _, err := r.db.Exec(ctx, `UPDATE conteos SET envio = $2 WHERE id = $1`, c.ID, int16(c.Envio)); err != nil {
		return fmt.Errorf("update envio: %w", err)
	}
	query := `UPDATE conteo_detalles SET existencia_fisica = $2 WHERE id = $1 AND conteo_id = $3`
	for i := range c.Detalles {
		d := &c.Detalles[i]
		if _, err := r.db.Exec(ctx, query, d.ID, d.ExistenciaFisica, c.ID); err != nil {
			return fmt.Errorf("update existencia física: %w", err)
		}
	}
	return nil
}

// Delete elimina conteo y detalles. La FK tiene ON DELETE CASCADE, pero los
// detalles se borran explícitamente para que la operación sea autoexplicativa
// dentro de la misma transacción.
func (r *ConteoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := r.db.Exec(ctx, `DELETE FROM conteo_detalles WHERE conteo_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete detalles: %w", err)
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM conteos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete conteo: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve conteos con sus detalles, en orden de creación (id ascendente),
// aplicando los filtros no nulos con AND y paginación skip/limit.
func (r *ConteoRepo) List(ctx context.Context, f repository.ConteoFiltro) ([]*entity.Conteo, error) {
	var (
		where []string
		args  []any
	)
	if f.IDCentro != nil {
		args = append(args, *f.IDCentro)
		where = append(where, fmt.Sprintf("id_centro = $%d", len(args)))
	}
	if f.Envio != nil {
		args = append(args, int16(*f.Envio))
		where = append(where, fmt.Sprintf("envio = $%d", len(args)))
	}
	if f.IDUsuario != nil {
		args = append(args, *f.IDUsuario)
		where = append(where, fmt.Sprintf("id_usuario = $%d", len(args)))
	}

	query := `SELECT id, id_centro, fecha_conteo, id_realizo, id_usuario, envio FROM conteos`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list conteos: %w", err)
	}
	defer rows.Close()

	var (
		list []*entity.Conteo
		ids  []int64
	)
	for rows.Next() {
		var c entity.Conteo
		var envio int16
		if err := rows.Scan(&c.ID, &c.IDCentro, &c.FechaConteo, &c.IDRealizo, &c.IDUsuario, &envio); err != nil {
			return nil, fmt.Errorf("scan conteo: %w", err)
		}
		c.Envio = entity.Envio(envio)
		list = append(list, &c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	detalles, err := r.detallesDe(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		c.Detalles = detalles[c.ID]
	}
	return list, nil
}

// detallesDe carga los detalles de los conteos indicados, agrupados por conteo.
func (r *ConteoRepo) detallesDe(ctx context.Context, conteoIDs []int64) (map[int64][]entity.ConteoDetalle, error) {
	query := `
		SELECT id, conteo_id, id_producto, existencia_teorica, existencia_fisica
		FROM conteo_detalles WHERE conteo_id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, conteoIDs)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.ConteoDetalle, len(conteoIDs))
	for rows.Next() {
		var d entity.ConteoDetalle
		if err := rows.Scan(&d.ID, &d.ConteoID, &d.IDProducto, &d.ExistenciaTeorica, &d.ExistenciaFisica); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out[d.ConteoID] = append(out[d.ConteoID], d)
	}
	return out, rows.Err()
}
