package domain

import "errors"

// Errores de dominio (sin dependencias externas). Son terminales y síncronos:
// el handler HTTP los traduce a códigos de estado, nunca se reintentan.
// Los fallos inesperados de almacenamiento se propagan envueltos, sin
// enmascararse como uno de estos.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrBranchNotFound = errors.New("sucursal no encontrada")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrInvalidState   = errors.New("el conteo ya fue finalizado")
	ErrInvalidDate    = errors.New("la fecha del conteo no puede ser anterior a hoy")
	ErrInvalidPayload = errors.New("producto desconocido para este conteo")
	ErrInvalidInput   = errors.New("entrada inválida")
)
