package auth

import (
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión. La autenticación es un stub deliberado:
// cualquier par de credenciales no vacías abre sesión. La bandera persistida
// en auth_user es la única fuente de verdad del estado autenticado; el JWT que
// se emite encima es transporte para la capa HTTP, no una verificación real.
type AuthUseCase struct {
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(sessions repository.SessionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{sessions: sessions, jwtCfg: jwtCfg}
}

// Login acepta cualquier par username/password no vacío, persiste la bandera
// {username, name: username} y emite el token. Con credenciales vacías
// devuelve domain.ErrInvalidCredentials sin cambio persistido.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user := entity.SessionUser{Username: in.Username, Name: in.Username}
	if err := uc.sessions.Set(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{Username: user.Username, Name: user.Name},
	}, nil
}

// Logout elimina la bandera de sesión. Idempotente: cerrar sesión sin sesión
// activa no es error.
func (uc *AuthUseCase) Logout() error {
	return uc.sessions.Clear()
}

// CurrentUser devuelve el usuario de la sesión o nil si no hay sesión.
func (uc *AuthUseCase) CurrentUser() (*dto.UserResponse, error) {
	user, err := uc.sessions.Get()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// IsAuthenticated indica si hay bandera de sesión presente.
func (uc *AuthUseCase) IsAuthenticated() (bool, error) {
	user, err := uc.sessions.Get()
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
