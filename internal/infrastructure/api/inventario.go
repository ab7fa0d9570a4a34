package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// InventarioClient operaciones de movimientos de inventario.
type InventarioClient struct {
	c *Client
}

// NewInventarioClient construye el cliente.
func NewInventarioClient(c *Client) *InventarioClient {
	return &InventarioClient{c: c}
}

// FiltroMovimientos parámetros de listado de movimientos.
type FiltroMovimientos struct {
	Limit  int
	Offset int
	Local  string
	Tipo   string
	Desde  string
	Hasta  string
}

func (f FiltroMovimientos) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.Tipo != "" {
		q.Set("tipo", f.Tipo)
	}
	if f.Desde != "" {
		q.Set("desde", f.Desde)
	}
	if f.Hasta != "" {
		q.Set("hasta", f.Hasta)
	}
	return q
}

type movimientoWire struct {
	ID           string    `json:"id"`
	Local        string    `json:"local"`
	CodigoBarras string    `json:"codigo_barras"`
	Producto     string    `json:"producto"`
	Tipo         string    `json:"tipo"`
	Cantidad     Monto     `json:"cantidad"`
	Referencia   string    `json:"referencia"`
	Fecha        time.Time `json:"fecha"`
	CreadoPor    string    `json:"creado_por"`
}

func adaptarMovimiento(w movimientoWire) entity.MovimientoInventario {
	return entity.MovimientoInventario{
		ID:           w.ID,
		Local:        w.Local,
		CodigoBarras: w.CodigoBarras,
		Producto:     w.Producto,
		Tipo:         w.Tipo,
		Cantidad:     w.Cantidad.Decimal,
		Referencia:   w.Referencia,
		Fecha:        w.Fecha,
		CreadoPor:    w.CreadoPor,
	}
}

// ListarMovimientos movimientos paginados con filtros.
func (ic *InventarioClient) ListarMovimientos(ctx context.Context, f FiltroMovimientos) (Pagina[entity.MovimientoInventario], error) {
	return listar(ctx, ic.c, "/inventario/movimientos", f.query(), adaptarMovimiento)
}

// RegistrarMovimientoRequest alta de un movimiento; la aritmética de stock la
// hace el backend, aquí solo se captura.
type RegistrarMovimientoRequest struct {
	Local        string `json:"local"`
	CodigoBarras string `json:"codigo_barras"`
	Tipo         string `json:"tipo"`
	Cantidad     string `json:"cantidad"`
	Referencia   string `json:"referencia,omitempty"`
}

// RegistrarMovimiento registra el movimiento y devuelve la versión del servidor.
func (ic *InventarioClient) RegistrarMovimiento(ctx context.Context, req RegistrarMovimientoRequest) (entity.MovimientoInventario, error) {
	var raw json.RawMessage
	if err := ic.c.Post(ctx, "/inventario/movimientos", req, &raw); err != nil {
		return entity.MovimientoInventario{}, err
	}
	w, err := decodificarMutacion[movimientoWire](raw)
	if err != nil {
		return entity.MovimientoInventario{}, err
	}
	return adaptarMovimiento(w), nil
}
