package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/sesion"
	"github.com/tu-usuario/super-backoffice/pkg/session"
)

// SesionHandler autenticación y proyección de sesión.
type SesionHandler struct {
	uc *sesion.UseCase
}

// NewSesionHandler construye el handler.
func NewSesionHandler(uc *sesion.UseCase) *SesionHandler {
	return &SesionHandler{uc: uc}
}

// Login autentica contra el backend y persiste la credencial.
func (h *SesionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Usuario == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "usuario y password son requeridos"})
	}
	if err := h.uc.Login(c.Context(), in.Usuario, in.Password); err != nil {
		return responderError(c, err)
	}
	claims, err := h.uc.Claims()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromClaims(claims))
}

// Logout descarta la credencial local.
func (h *SesionHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sesion proyección local del token, sin ir a la red.
func (h *SesionHandler) Sesion(c *fiber.Ctx) error {
	claims, err := h.uc.Claims()
	if err != nil {
		if errors.Is(err, session.ErrSinCredencial) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_AUTENTICADO", Message: "sin sesión activa"})
		}
		return responderError(c, err)
	}
	return c.JSON(dto.FromClaims(claims))
}

// Perfil proyección de sesión del backend (nombre, rol, saldo de caja chica).
func (h *SesionHandler) Perfil(c *fiber.Ctx) error {
	usuario, err := h.uc.Perfil(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromUsuario(usuario))
}
