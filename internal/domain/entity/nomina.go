package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nomina lote de conciliación de cheques: agrupa facturas de proveedores bajo
// números de cheque consecutivos para un día de pago.
type Nomina struct {
	ID           string
	Numero       int
	Local        string
	FechaPago    time.Time
	ChequeInicio int // primer número de cheque del lote
	Cheques      []Cheque
	Total        decimal.Decimal
	Cerrada      bool
}

// Cheque un cheque emitido dentro de una nómina, ligado a una factura.
type Cheque struct {
	Numero     int
	FacturaID  string
	Folio      string
	Proveedor  string
	Monto      decimal.Decimal
	Conciliado bool // cotejado contra el estado de cuenta
}

// Pendientes devuelve cuántos cheques del lote siguen sin conciliar.
func (n Nomina) Pendientes() int {
	c := 0
	for _, ch := range n.Cheques {
		if !ch.Conciliado {
			c++
		}
	}
	return c
}
