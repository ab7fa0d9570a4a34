package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/super-backoffice/internal/application/dto"
	"github.com/tu-usuario/super-backoffice/internal/domain"
)

// responderError traduce un error normalizado de la capa de API a la
// respuesta HTTP de esta aplicación. Cada clase produce un código y un
// mensaje de usuario distintos; los detalles por campo de una validación se
// propagan para que el formulario no se limpie.
func responderError(c *fiber.Ctx, err error) error {
	apiErr := domain.AsAPIError(err)

	status := fiber.StatusInternalServerError
	switch apiErr.Kind {
	case domain.KindAutenticacion:
		status = fiber.StatusUnauthorized
	case domain.KindPermiso:
		status = fiber.StatusForbidden
	case domain.KindNoEncontrado:
		status = fiber.StatusNotFound
	case domain.KindValidacion:
		status = fiber.StatusBadRequest
		if apiErr.Status == fiber.StatusUnprocessableEntity {
			status = fiber.StatusUnprocessableEntity
		}
	case domain.KindConflicto:
		status = fiber.StatusConflict
	case domain.KindServidor, domain.KindRed:
		status = fiber.StatusBadGateway
	case domain.KindTimeout:
		status = fiber.StatusGatewayTimeout
	}

	code := apiErr.Code
	if code == "" {
		code = codigoPorKind(apiErr.Kind)
	}
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:     code,
		Message:  mensajeUsuario(apiErr),
		Detalles: apiErr.Detalles,
	})
}

func codigoPorKind(k domain.Kind) string {
	switch k {
	case domain.KindAutenticacion:
		return "NO_AUTENTICADO"
	case domain.KindPermiso:
		return "PERMISO_DENEGADO"
	case domain.KindNoEncontrado:
		return "NO_ENCONTRADO"
	case domain.KindValidacion:
		return "VALIDACION"
	case domain.KindConflicto:
		return "CONFLICTO"
	case domain.KindServidor:
		return "ERROR_BACKEND"
	case domain.KindRed:
		return "SIN_CONEXION"
	case domain.KindTimeout:
		return "TIEMPO_AGOTADO"
	default:
		return "ERROR_INTERNO"
	}
}

// mensajeUsuario mensaje apto para mostrar en la vista. Las clases de
// infraestructura no exponen el detalle técnico al usuario.
func mensajeUsuario(e *domain.APIError) string {
	switch e.Kind {
	case domain.KindAutenticacion:
		return "la sesión expiró, inicie sesión de nuevo"
	case domain.KindPermiso:
		return "no tiene permiso para esta operación"
	case domain.KindServidor:
		return "el servidor tuvo un problema, intente más tarde"
	case domain.KindRed:
		return "sin conexión con el servidor, revise su red"
	case domain.KindTimeout:
		return "el servidor tardó demasiado en responder"
	}
	if e.Message != "" {
		return e.Message
	}
	return "ocurrió un error inesperado"
}
