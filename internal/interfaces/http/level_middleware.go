package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
)

// RequireLevel autoriza a rota só para os níveis dados. Deve vir depois do
// AuthMiddleware (depende do level em c.Locals).
func RequireLevel(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := GetUserLevel(c)
		if level == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_LEVEL", Message: "token sem nível de acesso"})
		}
		for _, a := range allowed {
			if level == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado para o nível do usuário"})
	}
}
