package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// ActualizarEstadoRequest entrada de aprobación/rechazo de un gasto, o del
// cambio de estado de un registro de caducidad.
type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}

// GastoResponse salida de un gasto de caja chica.
type GastoResponse struct {
	ID             string          `json:"id"`
	UsuarioID      string          `json:"usuario_id"`
	Usuario        string          `json:"usuario"`
	Local          string          `json:"local"`
	Concepto       string          `json:"concepto"`
	Monto          decimal.Decimal `json:"monto"`
	Fecha          time.Time       `json:"fecha"`
	Estado         string          `json:"estado"`
	ComprobanteURL string          `json:"comprobante_url,omitempty"`
}

// FromGasto adapta la entidad a su DTO de respuesta.
func FromGasto(g entity.Gasto) GastoResponse {
	return GastoResponse{
		ID:             g.ID,
		UsuarioID:      g.UsuarioID,
		Usuario:        g.Usuario,
		Local:          g.Local,
		Concepto:       g.Concepto,
		Monto:          g.Monto,
		Fecha:          g.Fecha,
		Estado:         g.Estado,
		ComprobanteURL: g.ComprobanteURL,
	}
}

// SaldoCajaResponse saldo del fondo del usuario.
type SaldoCajaResponse struct {
	UsuarioID  string          `json:"usuario_id"`
	Asignado   decimal.Decimal `json:"asignado"`
	Gastado    decimal.Decimal `json:"gastado"`
	Disponible decimal.Decimal `json:"disponible"`
}

// FromSaldoCaja adapta la entidad a su DTO de respuesta.
func FromSaldoCaja(s entity.SaldoCajaChica) SaldoCajaResponse {
	return SaldoCajaResponse{
		UsuarioID:  s.UsuarioID,
		Asignado:   s.Asignado,
		Gastado:    s.Gastado,
		Disponible: s.Disponible,
	}
}

// EstadoCajaResponse estado operativo del fondo.
type EstadoCajaResponse struct {
	Estado      string    `json:"estado"`
	CorteAl     time.Time `json:"corte_al"`
	Observacion string    `json:"observacion,omitempty"`
}

// FromEstadoCaja adapta la entidad a su DTO de respuesta.
func FromEstadoCaja(e entity.EstadoCajaChica) EstadoCajaResponse {
	return EstadoCajaResponse{Estado: e.Estado, CorteAl: e.CorteAl, Observacion: e.Observacion}
}
