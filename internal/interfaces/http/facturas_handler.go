package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/facturas"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// FacturasHandler maneja las peticiones HTTP de facturas de proveedor.
type FacturasHandler struct {
	uc *facturas.UseCase
}

// NewFacturasHandler construye el handler.
func NewFacturasHandler(uc *facturas.UseCase) *FacturasHandler {
	return &FacturasHandler{uc: uc}
}

// List listado paginado con filtros.
func (h *FacturasHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroFacturas{
		Limit:       page.Limit,
		Offset:      page.Offset,
		Local:       c.Query("local"),
		ProveedorID: c.Query("proveedor"),
		Desde:       c.Query("desde"),
		Hasta:       c.Query("hasta"),
	}
	pag, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(paginar(pag, dto.FromFactura))
}

// GetByFolio busca una factura por folio.
func (h *FacturasHandler) GetByFolio(c *fiber.Ctx) error {
	folio := c.Params("folio")
	if folio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FOLIO_REQUERIDO", Message: "folio es requerido"})
	}
	factura, err := h.uc.BuscarPorFolio(c.Context(), folio)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromFactura(factura))
}

// Create registra una factura recibida.
func (h *FacturasHandler) Create(c *fiber.Ctx) error {
	var in api.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Folio == "" || in.ProveedorID == "" || in.Total == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "folio, proveedor_id y total son requeridos"})
	}
	factura, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromFactura(factura))
}
