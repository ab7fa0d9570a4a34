package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/notascredito"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// NotasHandler maneja las peticiones HTTP de notas de crédito.
type NotasHandler struct {
	uc *notascredito.UseCase
}

// NewNotasHandler construye el handler.
func NewNotasHandler(uc *notascredito.UseCase) *NotasHandler {
	return &NotasHandler{uc: uc}
}

// List listado paginado. El parámetro q filtra por proveedor del lado de esta
// aplicación, sin distinguir mayúsculas ni acentos.
func (h *NotasHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroNotas{
		Limit:       page.Limit,
		Offset:      page.Offset,
		Local:       c.Query("local"),
		UsuarioID:   c.Query("usuario"),
		ProveedorID: c.Query("proveedor"),
	}
	pag, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	if q := c.Query("q"); q != "" {
		pag = notascredito.FiltrarPorProveedor(pag, q)
	}
	return c.JSON(paginar(pag, dto.FromNotaCredito))
}

// UpdateMonto cambia el monto de una nota (actualización optimista en cache).
func (h *NotasHandler) UpdateMonto(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_REQUERIDO", Message: "id es requerido"})
	}
	var in dto.ActualizarMontoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Monto.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "el monto no puede ser negativo"})
	}
	nota, err := h.uc.ActualizarMonto(c.Context(), id, in.Monto)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromNotaCredito(nota))
}

// Create registra una nota de crédito.
func (h *NotasHandler) Create(c *fiber.Ctx) error {
	var in api.CrearNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Folio == "" || in.ProveedorID == "" || in.Monto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "folio, proveedor_id y monto son requeridos"})
	}
	nota, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromNotaCredito(nota))
}
