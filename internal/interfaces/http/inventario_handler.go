package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/inventario"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// InventarioHandler maneja las peticiones HTTP de movimientos de inventario.
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// List listado paginado con filtros.
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroMovimientos{
		Limit:  page.Limit,
		Offset: page.Offset,
		Local:  c.Query("local"),
		Tipo:   c.Query("tipo"),
		Desde:  c.Query("desde"),
		Hasta:  c.Query("hasta"),
	}
	pag, err := h.uc.ListarMovimientos(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(paginar(pag, dto.FromMovimiento))
}

// Register captura un movimiento.
func (h *InventarioHandler) Register(c *fiber.Ctx) error {
	var in api.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.CodigoBarras == "" || in.Tipo == "" || in.Cantidad == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "codigo_barras, tipo y cantidad son requeridos"})
	}
	mov, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromMovimiento(mov))
}
