package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaCredito proyección de una nota de crédito de proveedor.
//
// El monto es una variante etiquetada: Monto siempre contiene el último valor
// confirmado por el servidor; mientras una actualización optimista está en
// vuelo, Actualizando es true y MontoPendiente contiene el valor especulativo.
// La vista nunca lee un estado a medio aplicar: o muestra el confirmado, o
// muestra "actualizando" con ambos valores a la vista.
type NotaCredito struct {
	ID          string
	Folio       string
	ProveedorID string
	Proveedor   string
	FacturaID   string
	Local       string
	UsuarioID   string // quien capturó la nota
	Concepto    string
	Fecha       time.Time
	Aplicada    bool

	Monto          decimal.Decimal
	MontoPendiente *decimal.Decimal
	Actualizando   bool
}

// MontoVisible devuelve el monto que la vista debe mostrar como vigente:
// el pendiente si hay actualización en vuelo, el confirmado si no.
func (n NotaCredito) MontoVisible() decimal.Decimal {
	if n.Actualizando && n.MontoPendiente != nil {
		return *n.MontoPendiente
	}
	return n.Monto
}

// ConPendiente devuelve una copia marcada como "actualizando" con el nuevo
// monto especulativo. El monto confirmado se conserva intacto.
func (n NotaCredito) ConPendiente(nuevo decimal.Decimal) NotaCredito {
	copia := n
	copia.Actualizando = true
	copia.MontoPendiente = &nuevo
	return copia
}

// Confirmada devuelve una copia con el monto que el servidor confirmó
// (que puede diferir del especulativo si el servidor normalizó el valor)
// y sin rastro del estado pendiente.
func (n NotaCredito) Confirmada(monto decimal.Decimal) NotaCredito {
	copia := n
	copia.Monto = monto
	copia.MontoPendiente = nil
	copia.Actualizando = false
	return copia
}
