package repository

import (
	"context"

	"github.com/scisp/conteos-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los usuarios se administran fuera de esta API: solo lectura.
type UsuarioRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	ListActivos(ctx context.Context) ([]*entity.Usuario, error)
}
