package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/estado"
	"github.com/tu-usuario/super-backoffice/internal/domain"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// EstadoHandler vista de estado operativo del backend (métricas por polling).
type EstadoHandler struct {
	uc *estado.UseCase
}

// NewEstadoHandler construye el handler.
func NewEstadoHandler(uc *estado.UseCase) *EstadoHandler {
	return &EstadoHandler{uc: uc}
}

// Get estado observable: último dato conocido, frescura y último error. Si el
// backend está caído la vista sigue mostrando lo último que se supo.
func (h *EstadoHandler) Get(c *fiber.Ctx) error {
	info := h.uc.Estado()

	resp := dto.EstadoResponse{Fresca: info.Fresca}
	if info.HayDato {
		if m, ok := info.Data.(entity.Metricas); ok {
			dm := dto.FromMetricas(m)
			resp.Metricas = &dm
		}
	}
	if info.Err != nil {
		resp.Error = mensajeUsuario(domain.AsAPIError(info.Err))
	}
	if resp.Metricas == nil {
		// Sin ronda previa: una consulta síncrona puebla la vista inicial.
		m, err := h.uc.Metricas(c.Context())
		if err != nil {
			return responderError(c, err)
		}
		dm := dto.FromMetricas(m)
		resp.Metricas = &dm
		resp.Fresca = true
		resp.Error = ""
	}
	return c.JSON(resp)
}

// Refresh fuerza una ronda de polling inmediata.
func (h *EstadoHandler) Refresh(c *fiber.Ctx) error {
	h.uc.Refrescar()
	return c.SendStatus(fiber.StatusAccepted)
}
