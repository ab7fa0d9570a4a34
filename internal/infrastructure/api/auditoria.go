package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// AuditoriaClient operaciones de auditoría de precios/señalización.
type AuditoriaClient struct {
	c *Client
}

// NewAuditoriaClient construye el cliente.
func NewAuditoriaClient(c *Client) *AuditoriaClient {
	return &AuditoriaClient{c: c}
}

// FiltroAuditorias parámetros de listado de cotejos de precio.
type FiltroAuditorias struct {
	Limit  int
	Offset int
	Local  string
	Desde  string
	Hasta  string
}

func (f FiltroAuditorias) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.Desde != "" {
		q.Set("desde", f.Desde)
	}
	if f.Hasta != "" {
		q.Set("hasta", f.Hasta)
	}
	return q
}

type auditoriaWire struct {
	ID             string    `json:"id"`
	Local          string    `json:"local"`
	CodigoBarras   string    `json:"codigo_barras"`
	Producto       string    `json:"producto"`
	PrecioEtiqueta Monto     `json:"precio_etiqueta"`
	PrecioSistema  Monto     `json:"precio_sistema"`
	Fecha          time.Time `json:"fecha"`
	Auditor        string    `json:"auditor"`
}

func adaptarAuditoria(w auditoriaWire) entity.AuditoriaPrecio {
	return entity.AuditoriaPrecio{
		ID:             w.ID,
		Local:          w.Local,
		CodigoBarras:   w.CodigoBarras,
		Producto:       w.Producto,
		PrecioEtiqueta: w.PrecioEtiqueta.Decimal,
		PrecioSistema:  w.PrecioSistema.Decimal,
		Fecha:          w.Fecha,
		Auditor:        w.Auditor,
	}
}

// Listar cotejos de precio paginados.
func (ac *AuditoriaClient) Listar(ctx context.Context, f FiltroAuditorias) (Pagina[entity.AuditoriaPrecio], error) {
	return listar(ctx, ac.c, "/auditorias/precios", f.query(), adaptarAuditoria)
}

// RegistrarAuditoriaRequest alta de un cotejo levantado en piso.
type RegistrarAuditoriaRequest struct {
	Local          string `json:"local"`
	CodigoBarras   string `json:"codigo_barras"`
	PrecioEtiqueta string `json:"precio_etiqueta"`
	PrecioSistema  string `json:"precio_sistema"`
}

// Registrar da de alta el cotejo y devuelve la versión del servidor.
func (ac *AuditoriaClient) Registrar(ctx context.Context, req RegistrarAuditoriaRequest) (entity.AuditoriaPrecio, error) {
	var raw json.RawMessage
	if err := ac.c.Post(ctx, "/auditorias/precios", req, &raw); err != nil {
		return entity.AuditoriaPrecio{}, err
	}
	w, err := decodificarMutacion[auditoriaWire](raw)
	if err != nil {
		return entity.AuditoriaPrecio{}, err
	}
	return adaptarAuditoria(w), nil
}
