package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// VencimientosClient operaciones de auditoría de fechas de caducidad.
type VencimientosClient struct {
	c *Client
}

// NewVencimientosClient construye el cliente.
func NewVencimientosClient(c *Client) *VencimientosClient {
	return &VencimientosClient{c: c}
}

// FiltroVencimientos parámetros de listado de caducidades.
type FiltroVencimientos struct {
	Limit   int
	Offset  int
	Local   string
	Estado  string
	DiasMax int // solo productos que caducan dentro de N días; 0 = sin filtro
}

func (f FiltroVencimientos) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	if f.DiasMax > 0 {
		q.Set("dias_max", strconv.Itoa(f.DiasMax))
	}
	return q
}

type vencimientoWire struct {
	ID             string    `json:"id"`
	Local          string    `json:"local"`
	CodigoBarras   string    `json:"codigo_barras"`
	Producto       string    `json:"producto"`
	FechaCaducidad time.Time `json:"fecha_caducidad"`
	Cantidad       int       `json:"cantidad"`
	Estado         string    `json:"estado"`
	RegistradoPor  string    `json:"registrado_por"`
	Fecha          time.Time `json:"fecha"`
}

func adaptarVencimiento(w vencimientoWire) entity.Vencimiento {
	return entity.Vencimiento{
		ID:             w.ID,
		Local:          w.Local,
		CodigoBarras:   w.CodigoBarras,
		Producto:       w.Producto,
		FechaCaducidad: w.FechaCaducidad,
		Cantidad:       w.Cantidad,
		Estado:         w.Estado,
		RegistradoPor:  w.RegistradoPor,
		Fecha:          w.Fecha,
	}
}

// Listar caducidades paginadas con filtros.
func (vc *VencimientosClient) Listar(ctx context.Context, f FiltroVencimientos) (Pagina[entity.Vencimiento], error) {
	return listar(ctx, vc.c, "/vencimientos", f.query(), adaptarVencimiento)
}

// RegistrarVencimientoRequest alta de un producto próximo a caducar.
type RegistrarVencimientoRequest struct {
	Local          string `json:"local"`
	CodigoBarras   string `json:"codigo_barras"`
	FechaCaducidad string `json:"fecha_caducidad"`
	Cantidad       int    `json:"cantidad"`
}

// Registrar da de alta el registro y devuelve la versión del servidor.
func (vc *VencimientosClient) Registrar(ctx context.Context, req RegistrarVencimientoRequest) (entity.Vencimiento, error) {
	var raw json.RawMessage
	if err := vc.c.Post(ctx, "/vencimientos", req, &raw); err != nil {
		return entity.Vencimiento{}, err
	}
	w, err := decodificarMutacion[vencimientoWire](raw)
	if err != nil {
		return entity.Vencimiento{}, err
	}
	return adaptarVencimiento(w), nil
}

// ActualizarEstado marca el registro como revisado o retirado.
func (vc *VencimientosClient) ActualizarEstado(ctx context.Context, id, estado string) (entity.Vencimiento, error) {
	body := map[string]string{"estado": estado}
	var raw json.RawMessage
	if err := vc.c.Put(ctx, "/vencimientos/"+url.PathEscape(id)+"/estado", body, &raw); err != nil {
		return entity.Vencimiento{}, err
	}
	w, err := decodificarMutacion[vencimientoWire](raw)
	if err != nil {
		return entity.Vencimiento{}, err
	}
	return adaptarVencimiento(w), nil
}
