package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de la capa de API en una de las clases de mensaje
// que la UI distingue. Cada clase produce un mensaje de usuario distinto.
type Kind int

const (
	KindDesconocido   Kind = iota
	KindAutenticacion      // 401 / token expirado → limpiar credencial y redirigir a login
	KindPermiso            // 403 → mantener sesión, mensaje de permiso denegado
	KindNoEncontrado       // 404 → mensaje acotado al recurso buscado
	KindValidacion         // 400/422 con detalle por campo → no limpiar el formulario
	KindConflicto          // 409 o regla de negocio (ej. saldo insuficiente)
	KindServidor           // 5xx → "intente más tarde", reintentable
	KindRed                // conectividad → "revise su conexión", reintentable
	KindTimeout            // timeout, distinto de conectividad, reintentable
)

// String nombre legible de la clase, para logs.
func (k Kind) String() string {
	switch k {
	case KindAutenticacion:
		return "autenticacion"
	case KindPermiso:
		return "permiso"
	case KindNoEncontrado:
		return "no_encontrado"
	case KindValidacion:
		return "validacion"
	case KindConflicto:
		return "conflicto"
	case KindServidor:
		return "servidor"
	case KindRed:
		return "red"
	case KindTimeout:
		return "timeout"
	default:
		return "desconocido"
	}
}

// APIError error normalizado de la capa de API. Los clientes nunca dejan
// pasar un error crudo: todo error saliente del backend se convierte a esta
// forma única antes de propagarse hacia los casos de uso y la UI.
type APIError struct {
	Kind     Kind
	Status   int               // código HTTP original (0 si no hubo respuesta)
	Code     string            // código de error del servidor, si lo envió
	Message  string            // mensaje del servidor o descripción local
	Detalles map[string]string // errores de validación por campo, si los hay
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// Recuperable informa si tiene sentido reintentar automáticamente.
// 4xx no se reintenta (salvo 408/429): es un error del cliente que repetir no arregla.
func (e *APIError) Recuperable() bool {
	switch e.Kind {
	case KindServidor, KindRed, KindTimeout:
		return true
	}
	return e.Status == 408 || e.Status == 429
}

// AsAPIError extrae el *APIError de la cadena, o lo envuelve como desconocido.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindDesconocido, Message: err.Error()}
}

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrSaldoInsuficiente = errors.New("saldo de caja chica insuficiente")
)
