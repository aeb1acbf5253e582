package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scisp/conteos-api/internal/application/auth"
	"github.com/scisp/conteos-api/internal/application/conteo"
	"github.com/scisp/conteos-api/internal/domain/role"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ConteoUC  *conteo.ConteoUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Cada ruta de conteos lleva el
// RequireRole derivado de la tabla de políticas; el motor repite el chequeo
// contra el usuario almacenado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Get("/role", AuthMiddleware(deps.JWTSecret), authHandler.Rol)
	authGroup.Get("/usuarios", AuthMiddleware(deps.JWTSecret), authHandler.Usuarios)

	// Conteos (protegido). Las rutas estáticas van antes que /:id.
	conteoHandler := NewConteoHandler(deps.ConteoUC)
	conteos := api.Group("/conteos", AuthMiddleware(deps.JWTSecret))
	conteos.Get("/sucursales", requireOp(role.OpListar), conteoHandler.Sucursales)
	conteos.Post("/crear", requireOp(role.OpCrear), conteoHandler.Crear)
	conteos.Post("/asignar", requireOp(role.OpAsignar), conteoHandler.Asignar)
	conteos.Get("/usuario/:user_id", requireOp(role.OpListar), conteoHandler.PorUsuario)
	conteos.Get("/sucursal/:centro_id", requireOp(role.OpListar), conteoHandler.PorSucursal)
	conteos.Put("/:id/editar", requireOp(role.OpEditar), conteoHandler.Editar)
	conteos.Put("/:id/contestar", requireOp(role.OpContestar), conteoHandler.Contestar)
	conteos.Delete("/:id", requireOp(role.OpEliminar), conteoHandler.Eliminar)
	conteos.Get("/:id", requireOp(role.OpObtener), conteoHandler.Obtener)
	conteos.Get("/", requireOp(role.OpListar), conteoHandler.Listar)
}

// requireOp construye el middleware RBAC desde la tabla de políticas.
func requireOp(op role.Operacion) fiber.Handler {
	return RequireRole(role.RolesPermitidos(op)...)
}
