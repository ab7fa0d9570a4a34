package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// NotasCreditoClient operaciones de notas de crédito de proveedor.
type NotasCreditoClient struct {
	c *Client
}

// NewNotasCreditoClient construye el cliente.
func NewNotasCreditoClient(c *Client) *NotasCreditoClient {
	return &NotasCreditoClient{c: c}
}

// FiltroNotas parámetros de listado de notas de crédito.
type FiltroNotas struct {
	Limit       int
	Offset      int
	Local       string
	UsuarioID   string
	ProveedorID string
}

func (f FiltroNotas) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.UsuarioID != "" {
		q.Set("usuario", f.UsuarioID)
	}
	if f.ProveedorID != "" {
		q.Set("proveedor", f.ProveedorID)
	}
	return q
}

type notaCreditoWire struct {
	ID          string    `json:"id"`
	Folio       string    `json:"folio"`
	ProveedorID string    `json:"proveedor_id"`
	Proveedor   string    `json:"proveedor"`
	FacturaID   string    `json:"factura_id"`
	Local       string    `json:"local"`
	UsuarioID   string    `json:"usuario_id"`
	Concepto    string    `json:"concepto"`
	Fecha       time.Time `json:"fecha"`
	Aplicada    bool      `json:"aplicada"`
	Monto       Monto     `json:"monto"`
}

func adaptarNota(w notaCreditoWire) entity.NotaCredito {
	return entity.NotaCredito{
		ID:          w.ID,
		Folio:       w.Folio,
		ProveedorID: w.ProveedorID,
		Proveedor:   w.Proveedor,
		FacturaID:   w.FacturaID,
		Local:       w.Local,
		UsuarioID:   w.UsuarioID,
		Concepto:    w.Concepto,
		Fecha:       w.Fecha,
		Aplicada:    w.Aplicada,
		Monto:       w.Monto.Decimal,
	}
}

// Listar notas de crédito paginadas con filtros.
func (nc *NotasCreditoClient) Listar(ctx context.Context, f FiltroNotas) (Pagina[entity.NotaCredito], error) {
	return listar(ctx, nc.c, "/notas-credito", f.query(), adaptarNota)
}

// ActualizarMonto escribe el nuevo monto y devuelve la nota confirmada por el
// servidor. El monto devuelto manda: el servidor puede normalizarlo (redondeo).
func (nc *NotasCreditoClient) ActualizarMonto(ctx context.Context, id string, monto decimal.Decimal) (entity.NotaCredito, error) {
	body := map[string]string{"monto": monto.StringFixed(2)}
	var raw json.RawMessage
	if err := nc.c.Put(ctx, "/notas-credito/"+url.PathEscape(id)+"/monto", body, &raw); err != nil {
		return entity.NotaCredito{}, err
	}
	w, err := decodificarMutacion[notaCreditoWire](raw)
	if err != nil {
		return entity.NotaCredito{}, err
	}
	return adaptarNota(w), nil
}

// CrearNotaRequest alta de una nota de crédito.
type CrearNotaRequest struct {
	Folio       string `json:"folio"`
	ProveedorID string `json:"proveedor_id"`
	FacturaID   string `json:"factura_id,omitempty"`
	Local       string `json:"local"`
	Concepto    string `json:"concepto"`
	Monto       string `json:"monto"`
	Fecha       string `json:"fecha"`
}

// Crear registra la nota y devuelve la versión del servidor.
func (nc *NotasCreditoClient) Crear(ctx context.Context, req CrearNotaRequest) (entity.NotaCredito, error) {
	var raw json.RawMessage
	if err := nc.c.Post(ctx, "/notas-credito", req, &raw); err != nil {
		return entity.NotaCredito{}, err
	}
	w, err := decodificarMutacion[notaCreditoWire](raw)
	if err != nil {
		return entity.NotaCredito{}, err
	}
	return adaptarNota(w), nil
}
