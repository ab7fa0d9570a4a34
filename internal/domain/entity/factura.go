package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura dentro del flujo de recepción.
const (
	FacturaPendiente = "pendiente" // recibida, sin revisar
	FacturaRevisada  = "revisada"  // cotejada contra la mercancía
	FacturaEnNomina  = "en_nomina" // asignada a un cheque de nómina
	FacturaPagada    = "pagada"
	FacturaDevuelta  = "devuelta" // rechazada al proveedor
)

// Factura proyección de una factura de proveedor. Valor inmutable entre
// fetches; el estado autoritativo vive en el backend.
type Factura struct {
	ID           string
	Folio        string
	ProveedorID  string
	Proveedor    string
	Local        string // sucursal que recibió la mercancía
	Total        decimal.Decimal
	Fecha        time.Time
	Estado       string
	UUIDFiscal   string // folio fiscal del CFDI, si aplica
	ArchivoURL   string // comprobante digitalizado (Drive)
	NotasCredito int    // cuántas notas de crédito la referencian
}
