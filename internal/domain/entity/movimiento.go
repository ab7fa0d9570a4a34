package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste"
	MovimientoMerma   = "merma" // producto dañado o caducado retirado de piso
)

// MovimientoInventario un movimiento de inventario registrado en un local.
type MovimientoInventario struct {
	ID           string
	Local        string
	CodigoBarras string
	Producto     string
	Tipo         string          // entrada, salida, ajuste, merma
	Cantidad     decimal.Decimal // positiva en entrada/ajuste+, negativa en salida/merma
	Referencia   string          // factura, traspaso, nota de ajuste
	Fecha        time.Time
	CreadoPor    string // UserID
}
