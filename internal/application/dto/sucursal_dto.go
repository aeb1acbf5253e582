package dto

// SucursalResponse sucursal disponible para levantar conteos.
type SucursalResponse struct {
	IDCentro string `json:"id_centro"`
	Sucursal string `json:"sucursal"`
}
