package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/scisp/conteos-api/internal/application/dto"
	"github.com/scisp/conteos-api/internal/domain"
	"github.com/scisp/conteos-api/internal/domain/entity"
	"github.com/scisp/conteos-api/internal/domain/repository"
	"github.com/scisp/conteos-api/internal/domain/role"
	"github.com/scisp/conteos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y consulta del usuario actual.
// Las contraseñas se almacenan como hash bcrypt; el contrato de login no cambia
// (id de usuario + contraseña, solo usuarios activos).
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica id de usuario + contraseña, genera el JWT y retorna token + usuario.
// Un id inexistente, un usuario inactivo o una contraseña incorrecta responden
// igual: ErrUnauthorized, sin distinguir la causa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarioRepo.GetByID(ctx, in.IDUsuario)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if !user.Activo() {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(role.Of(user)), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *toUsuarioResponse(user),
	}, nil
}

// Me devuelve la información del usuario autenticado. Si el usuario ya no
// existe o fue desactivado después de emitir el token, responde ErrUnauthorized.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UsuarioResponse, error) {
	user, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if !user.Activo() {
		return nil, domain.ErrUnauthorized
	}
	return toUsuarioResponse(user), nil
}

// Rol devuelve el rol resuelto del usuario autenticado.
func (uc *AuthUseCase) Rol(ctx context.Context, userID int64) (*dto.RolResponse, error) {
	user, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if !user.Activo() {
		return nil, domain.ErrUnauthorized
	}
	return &dto.RolResponse{
		IDUsuario: user.ID,
		Rol:       string(role.Of(user)),
		Nivel:     user.Nivel,
	}, nil
}

// ListUsuariosActivos lista los usuarios activos (para asignación de conteos).
func (uc *AuthUseCase) ListUsuariosActivos(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListActivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		IDUsuario:     u.ID,
		NombreUsuario: u.Nombre,
		NivelUsuario:  u.Nivel,
		Rol:           string(role.Of(u)),
		Estatus:       u.Estatus,
	}
}
