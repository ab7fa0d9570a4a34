package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// ChequeResponse un cheque del lote, ligado a su factura.
type ChequeResponse struct {
	Numero     int             `json:"numero"`
	FacturaID  string          `json:"factura_id"`
	Folio      string          `json:"folio"`
	Proveedor  string          `json:"proveedor"`
	Monto      decimal.Decimal `json:"monto"`
	Conciliado bool            `json:"conciliado"`
}

// NominaResponse salida de una nómina de conciliación.
type NominaResponse struct {
	ID           string           `json:"id"`
	Numero       int              `json:"numero"`
	Local        string           `json:"local"`
	FechaPago    time.Time        `json:"fecha_pago"`
	ChequeInicio int              `json:"cheque_inicio"`
	Cheques      []ChequeResponse `json:"cheques,omitempty"`
	Total        decimal.Decimal  `json:"total"`
	Cerrada      bool             `json:"cerrada"`
	Pendientes   int              `json:"pendientes"`
}

// FromNomina adapta la entidad a su DTO de respuesta.
func FromNomina(n entity.Nomina) NominaResponse {
	cheques := make([]ChequeResponse, 0, len(n.Cheques))
	for _, ch := range n.Cheques {
		cheques = append(cheques, ChequeResponse{
			Numero:     ch.Numero,
			FacturaID:  ch.FacturaID,
			Folio:      ch.Folio,
			Proveedor:  ch.Proveedor,
			Monto:      ch.Monto,
			Conciliado: ch.Conciliado,
		})
	}
	return NominaResponse{
		ID:           n.ID,
		Numero:       n.Numero,
		Local:        n.Local,
		FechaPago:    n.FechaPago,
		ChequeInicio: n.ChequeInicio,
		Cheques:      cheques,
		Total:        n.Total,
		Cerrada:      n.Cerrada,
		Pendientes:   n.Pendientes(),
	}
}
