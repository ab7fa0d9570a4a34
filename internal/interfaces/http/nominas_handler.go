package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/nominas"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// NominasHandler maneja las peticiones HTTP de nóminas de conciliación.
type NominasHandler struct {
	uc *nominas.UseCase
}

// NewNominasHandler construye el handler.
func NewNominasHandler(uc *nominas.UseCase) *NominasHandler {
	return &NominasHandler{uc: uc}
}

// List listado paginado con filtros.
func (h *NominasHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroNominas{
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
	return c.JSON(paginar(pag, dto.FromNomina))
}

// GetByID una nómina con sus cheques.
func (h *NominasHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_REQUERIDO", Message: "id es requerido"})
	}
	nomina, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromNomina(nomina))
}

// ConciliarCheque marca un cheque del lote como cotejado.
func (h *NominasHandler) ConciliarCheque(c *fiber.Ctx) error {
	id := c.Params("id")
	numero, err := c.ParamsInt("numero")
	if id == "" || err != nil || numero <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "id y número de cheque son requeridos"})
	}
	nomina, err := h.uc.ConciliarCheque(c.Context(), id, numero)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromNomina(nomina))
}
