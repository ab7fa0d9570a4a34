package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/etiquetas"
)

// EtiquetasHandler previsualización de etiquetas ZPL.
type EtiquetasHandler struct {
	uc *etiquetas.UseCase
}

// NewEtiquetasHandler construye el handler.
func NewEtiquetasHandler(uc *etiquetas.UseCase) *EtiquetasHandler {
	return &EtiquetasHandler{uc: uc}
}

// Preview recibe el cuerpo ZPL tal cual y responde la imagen PNG renderizada.
func (h *EtiquetasHandler) Preview(c *fiber.Ctx) error {
	zpl := string(c.Body())
	if zpl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "cuerpo ZPL requerido"})
	}
	png, err := h.uc.Previsualizar(c.Context(), zpl)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
