package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	db DB
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

// GetByID obtiene un usuario por ID. Devuelve nil sin error si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre_usuario, contrasena, nivel_usuario, estatus
		FROM usuarios WHERE id_usuario = $1`
	var u entity.Usuario
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Nombre, &u.PasswordHash, &u.Nivel, &u.Estatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// ListActivos lista los usuarios con estatus activo, en orden de id.
func (r *UsuarioRepo) ListActivos(ctx context.Context) ([]*entity.Usuario, error) {
	query := `
		SELECT id_usuario, nombre_usuario, contrasena, nivel_usuario, estatus
		FROM usuarios WHERE estatus = $1 ORDER BY id_usuario`
	rows, err := r.db.Query(ctx, query, entity.EstatusActivo)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.PasswordHash, &u.Nivel, &u.Estatus); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
