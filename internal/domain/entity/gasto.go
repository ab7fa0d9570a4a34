package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un gasto de caja chica.
const (
	GastoPendiente   = "pendiente"
	GastoAprobado    = "aprobado"
	GastoRechazado   = "rechazado"
	GastoReembolsado = "reembolsado"
)

// Gasto un gasto reembolsable de caja chica capturado por un usuario.
type Gasto struct {
	ID             string
	UsuarioID      string
	Usuario        string
	Local          string
	Concepto       string
	Monto          decimal.Decimal
	Fecha          time.Time
	Estado         string
	ComprobanteURL string // foto del ticket (Drive)
}

// SaldoCajaChica saldo del fondo de caja chica de un usuario. Calculado por
// el servidor; esta capa solo lo muestra, nunca lo deriva.
type SaldoCajaChica struct {
	UsuarioID  string
	Asignado   decimal.Decimal
	Gastado    decimal.Decimal
	Disponible decimal.Decimal
}

// EstadoCajaChica estado operativo del fondo (abierto, en corte, cerrado).
type EstadoCajaChica struct {
	Estado      string
	CorteAl     time.Time
	Observacion string
}
