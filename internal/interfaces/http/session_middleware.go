package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// VistaPorDefecto destino tras iniciar sesión o al entrar a /login con
// sesión vigente.
const VistaPorDefecto = "/facturas"

// RequiereSesion protege las rutas de API: sin credencial vigente responde
// 401 sin tocar el backend.
func RequiereSesion(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.Activa() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_AUTENTICADO",
				Message: "inicie sesión para continuar",
			})
		}
		return c.Next()
	}
}

// GuardiaVistas reglas de navegación de las vistas:
//
//   - sin sesión, cualquier vista redirige a /login;
//   - con sesión, /login redirige a la vista por defecto;
//   - ya en /login sin sesión NO se vuelve a redirigir (evita el ciclo).
func GuardiaVistas(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activa := store.Activa()
		if c.Path() == "/login" {
			if activa {
				return c.Redirect(VistaPorDefecto, fiber.StatusFound)
			}
			return c.Next()
		}
		if !activa {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}
