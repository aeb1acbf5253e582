package entity

// Sucursal representa una sucursal (centro) donde se levantan conteos.
// Datos de referencia, solo lectura para el motor.
type Sucursal struct {
	IDCentro string
	Nombre   string
}
