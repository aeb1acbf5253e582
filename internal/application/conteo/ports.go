package conteo

import (
	"context"

	"github.com/scisp/conteos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de conteos atado a esa tx. Toda mutación de varios pasos del
// motor (verificar estado + actualizar campos + actualizar detalles, o
// eliminar en cascada) corre completa dentro de una transacción: si un paso
// falla, no queda estado parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(conteos repository.ConteoRepository) error) error
}
