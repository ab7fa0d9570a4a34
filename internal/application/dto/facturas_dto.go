package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// FacturaResponse salida de una factura de proveedor.
type FacturaResponse struct {
	ID           string          `json:"id"`
	Folio        string          `json:"folio"`
	ProveedorID  string          `json:"proveedor_id"`
	Proveedor    string          `json:"proveedor"`
	Local        string          `json:"local"`
	Total        decimal.Decimal `json:"total"`
	Fecha        time.Time       `json:"fecha"`
	Estado       string          `json:"estado"`
	UUIDFiscal   string          `json:"uuid_fiscal,omitempty"`
	ArchivoURL   string          `json:"archivo_url,omitempty"`
	NotasCredito int             `json:"notas_credito"`
}

// FromFactura adapta la entidad a su DTO de respuesta.
func FromFactura(f entity.Factura) FacturaResponse {
	return FacturaResponse{
		ID:           f.ID,
		Folio:        f.Folio,
		ProveedorID:  f.ProveedorID,
		Proveedor:    f.Proveedor,
		Local:        f.Local,
		Total:        f.Total,
		Fecha:        f.Fecha,
		Estado:       f.Estado,
		UUIDFiscal:   f.UUIDFiscal,
		ArchivoURL:   f.ArchivoURL,
		NotasCredito: f.NotasCredito,
	}
}
