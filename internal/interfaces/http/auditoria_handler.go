package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/auditoria"
	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// AuditoriaHandler maneja las peticiones HTTP de auditoría de precios.
type AuditoriaHandler struct {
	uc *auditoria.UseCase
}

// NewAuditoriaHandler construye el handler.
func NewAuditoriaHandler(uc *auditoria.UseCase) *AuditoriaHandler {
	return &AuditoriaHandler{uc: uc}
}

// List listado paginado. Con solo_discrepancias=true deja únicamente los
// cotejos con diferencia distinta de cero.
func (h *AuditoriaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroAuditorias{
		Limit:  page.Limit,
		Offset: page.Offset,
		Local:  c.Query("local"),
		Desde:  c.Query("desde"),
		Hasta:  c.Query("hasta"),
	}
	pag, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	if c.QueryBool("solo_discrepancias") {
		pag = auditoria.SoloDiscrepancias(pag)
	}
	return c.JSON(paginar(pag, dto.FromAuditoria))
}

// Register da de alta un cotejo levantado en piso.
func (h *AuditoriaHandler) Register(c *fiber.Ctx) error {
	var in api.RegistrarAuditoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.CodigoBarras == "" || in.PrecioEtiqueta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "codigo_barras y precio_etiqueta son requeridos"})
	}
	a, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromAuditoria(a))
}
