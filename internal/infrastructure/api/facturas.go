package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// FacturasClient operaciones de facturas de proveedor.
type FacturasClient struct {
	c *Client
}

// NewFacturasClient construye el cliente.
func NewFacturasClient(c *Client) *FacturasClient {
	return &FacturasClient{c: c}
}

// FiltroFacturas parámetros de listado. Cada campo activo forma parte de la
// clave de cache: dos filtros distintos nunca comparten resultados.
type FiltroFacturas struct {
	Limit       int
	Offset      int
	Local       string
	ProveedorID string
	Desde       string // YYYY-MM-DD
	Hasta       string
}

func (f FiltroFacturas) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.ProveedorID != "" {
		q.Set("proveedor", f.ProveedorID)
	}
	if f.Desde != "" {
		q.Set("desde", f.Desde)
	}
	if f.Hasta != "" {
		q.Set("hasta", f.Hasta)
	}
	return q
}

type facturaWire struct {
	ID           string    `json:"id"`
	Folio        string    `json:"folio"`
	ProveedorID  string    `json:"proveedor_id"`
	Proveedor    string    `json:"proveedor"`
	Local        string    `json:"local"`
	Total        Monto     `json:"total"`
	Fecha        time.Time `json:"fecha"`
	Estado       string    `json:"estado"`
	UUIDFiscal   string    `json:"uuid_fiscal"`
	ArchivoURL   string    `json:"archivo_url"`
	NotasCredito int       `json:"notas_credito"`
}

func adaptarFactura(w facturaWire) entity.Factura {
	return entity.Factura{
		ID:           w.ID,
		Folio:        w.Folio,
		ProveedorID:  w.ProveedorID,
		Proveedor:    w.Proveedor,
		Local:        w.Local,
		Total:        w.Total.Decimal,
		Fecha:        w.Fecha,
		Estado:       w.Estado,
		UUIDFiscal:   w.UUIDFiscal,
		ArchivoURL:   adaptarURLDrive(w.ArchivoURL),
		NotasCredito: w.NotasCredito,
	}
}

// Listar facturas paginadas con filtros.
func (fc *FacturasClient) Listar(ctx context.Context, f FiltroFacturas) (Pagina[entity.Factura], error) {
	return listar(ctx, fc.c, "/facturas", f.query(), adaptarFactura)
}

// ObtenerPorFolio busca una factura por su folio.
func (fc *FacturasClient) ObtenerPorFolio(ctx context.Context, folio string) (entity.Factura, error) {
	var w facturaWire
	if err := fc.c.Get(ctx, "/facturas/folio/"+url.PathEscape(folio), nil, &w); err != nil {
		return entity.Factura{}, err
	}
	return adaptarFactura(w), nil
}

// CrearFacturaRequest alta de una factura recibida.
type CrearFacturaRequest struct {
	Folio       string `json:"folio"`
	ProveedorID string `json:"proveedor_id"`
	Local       string `json:"local"`
	Total       string `json:"total"` // decimal como string, el backend lo valida
	Fecha       string `json:"fecha"`
	UUIDFiscal  string `json:"uuid_fiscal,omitempty"`
	ArchivoURL  string `json:"archivo_url,omitempty"`
}

// Crear registra la factura y devuelve la versión del servidor.
func (fc *FacturasClient) Crear(ctx context.Context, req CrearFacturaRequest) (entity.Factura, error) {
	var raw json.RawMessage
	if err := fc.c.Post(ctx, "/facturas", req, &raw); err != nil {
		return entity.Factura{}, err
	}
	w, err := decodificarMutacion[facturaWire](raw)
	if err != nil {
		return entity.Factura{}, err
	}
	return adaptarFactura(w), nil
}
