package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/vencimientos"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// VencimientosHandler maneja las peticiones HTTP de auditoría de caducidades.
type VencimientosHandler struct {
	uc *vencimientos.UseCase
}

// NewVencimientosHandler construye el handler.
func NewVencimientosHandler(uc *vencimientos.UseCase) *VencimientosHandler {
	return &VencimientosHandler{uc: uc}
}

// List listado paginado con filtros.
func (h *VencimientosHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroVencimientos{
		Limit:   page.Limit,
		Offset:  page.Offset,
		Local:   c.Query("local"),
		Estado:  c.Query("estado"),
		DiasMax: c.QueryInt("dias_max", 0),
	}
	pag, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(paginar(pag, dto.FromVencimiento))
}

// Register da de alta un producto próximo a caducar.
func (h *VencimientosHandler) Register(c *fiber.Ctx) error {
	var in api.RegistrarVencimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.CodigoBarras == "" || in.FechaCaducidad == "" || in.Cantidad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "codigo_barras, fecha_caducidad y cantidad son requeridos"})
	}
	v, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromVencimiento(v))
}

// UpdateEstado marca el registro como revisado o retirado.
func (h *VencimientosHandler) UpdateEstado(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ActualizarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Estado != entity.VencimientoRevisado && in.Estado != entity.VencimientoRetirado {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "estado debe ser revisado o retirado"})
	}
	v, err := h.uc.ActualizarEstado(c.Context(), id, in.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromVencimiento(v))
}
