package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Envio es el estado del ciclo de vida de un Conteo. Dos estados, sin reapertura:
// un conteo finalizado solo puede eliminarse.
type Envio int16

const (
	EnvioPendiente  Envio = 0
	EnvioFinalizado Envio = 1
)

// String devuelve el nombre legible del estado.
func (e Envio) String() string {
	switch e {
	case EnvioPendiente:
		return "pendiente"
	case EnvioFinalizado:
		return "finalizado"
	default:
		return "desconocido"
	}
}

// Valido indica si el valor corresponde a un estado del ciclo de vida.
func (e Envio) Valido() bool {
	return e == EnvioPendiente || e == EnvioFinalizado
}

// PuedeEditar indica si el estado admite la operación de edición.
func (e Envio) PuedeEditar() bool { return e == EnvioPendiente }

// PuedeContestar indica si el estado admite la operación de contestar.
func (e Envio) PuedeContestar() bool { return e == EnvioPendiente }

// Conteo es la entidad central: una tarea de conteo de inventario sobre una
// sucursal, con quién la solicitó (IDRealizo) y quién debe contestarla
// (IDUsuario). Es dueño exclusivo de sus detalles.
type Conteo struct {
	ID          int64
	IDCentro    string
	FechaConteo time.Time // solo fecha; la hora no participa en comparaciones
	IDRealizo   int64     // quien creó/asignó el conteo
	IDUsuario   int64     // quien debe contestarlo
	Envio       Envio
	Detalles    []ConteoDetalle
}

// DetallePorProducto busca un detalle por su id de producto. Devuelve nil si no existe.
func (c *Conteo) DetallePorProducto(idProducto string) *ConteoDetalle {
	for i := range c.Detalles {
		if c.Detalles[i].IDProducto == idProducto {
			return &c.Detalles[i]
		}
	}
	return nil
}

// ConteoDetalle es una línea de producto dentro de un Conteo. La existencia
// teórica es inmutable; la física solo se escribe al contestar.
type ConteoDetalle struct {
	ID                int64
	ConteoID          int64
	IDProducto        string
	ExistenciaTeorica decimal.Decimal
	ExistenciaFisica  decimal.NullDecimal // NULL hasta que el conteo se contesta
}
