package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
)

// Locals key para el username en Fiber.
const LocalUsername = "username"

// SessionChecker es lo que el middleware necesita del caso de uso de auth:
// saber si la bandera de sesión sigue presente.
type SessionChecker interface {
	IsAuthenticated() (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT y además exige que la bandera de
// sesión exista en el store: la presencia de auth_user es la fuente de verdad,
// así que un logout invalida los tokens emitidos aunque no hayan expirado.
func AuthMiddleware(jwtSecret string, sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		authenticated, err := sessions.IsAuthenticated()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "la sesión fue cerrada"})
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
