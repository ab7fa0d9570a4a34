package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/application/gastos"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
)

// GastosHandler maneja las peticiones HTTP de caja chica.
type GastosHandler struct {
	uc *gastos.UseCase
}

// NewGastosHandler construye el handler.
func NewGastosHandler(uc *gastos.UseCase) *GastosHandler {
	return &GastosHandler{uc: uc}
}

// List listado paginado con filtros.
func (h *GastosHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "paginación inválida"})
	}
	page.DefaultPage()

	f := api.FiltroGastos{
		Limit:     page.Limit,
		Offset:    page.Offset,
		UsuarioID: c.Query("usuario"),
		Local:     c.Query("local"),
		Estado:    c.Query("estado"),
		Desde:     c.Query("desde"),
		Hasta:     c.Query("hasta"),
	}
	pag, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(paginar(pag, dto.FromGasto))
}

// Create registra un gasto; el backend valida el saldo disponible.
func (h *GastosHandler) Create(c *fiber.Ctx) error {
	var in api.CrearGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Concepto == "" || in.Monto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "concepto y monto son requeridos"})
	}
	gasto, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromGasto(gasto))
}

// UpdateEstado aprueba o rechaza un gasto pendiente.
func (h *GastosHandler) UpdateEstado(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ActualizarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if in.Estado != entity.GastoAprobado && in.Estado != entity.GastoRechazado {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "estado debe ser aprobado o rechazado"})
	}
	gasto, err := h.uc.ActualizarEstado(c.Context(), id, in.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromGasto(gasto))
}

// Saldo saldo del fondo del usuario indicado.
func (h *GastosHandler) Saldo(c *fiber.Ctx) error {
	usuario := c.Query("usuario")
	if usuario == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "usuario es requerido"})
	}
	saldo, err := h.uc.Saldo(c.Context(), usuario)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromSaldoCaja(saldo))
}

// Estado estado operativo del fondo.
func (h *GastosHandler) Estado(c *fiber.Ctx) error {
	estado, err := h.uc.Estado(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.FromEstadoCaja(estado))
}

// Estadisticas agregados del tablero.
func (h *GastosHandler) Estadisticas(c *fiber.Ctx) error {
	resumen, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resumen)
}
