package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// NominasClient operaciones de nóminas (lotes de cheques).
type NominasClient struct {
	c *Client
}

// NewNominasClient construye el cliente.
func NewNominasClient(c *Client) *NominasClient {
	return &NominasClient{c: c}
}

// FiltroNominas parámetros de listado de nóminas.
type FiltroNominas struct {
	Limit  int
	Offset int
	Local  string
	Desde  string
	Hasta  string
}

func (f FiltroNominas) query() url.Values {
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

type chequeWire struct {
	Numero     int    `json:"numero"`
	FacturaID  string `json:"factura_id"`
	Folio      string `json:"folio"`
	Proveedor  string `json:"proveedor"`
	Monto      Monto  `json:"monto"`
	Conciliado bool   `json:"conciliado"`
}

type nominaWire struct {
	ID           string       `json:"id"`
	Numero       int          `json:"numero"`
	Local        string       `json:"local"`
	FechaPago    time.Time    `json:"fecha_pago"`
	ChequeInicio int          `json:"cheque_inicio"`
	Cheques      []chequeWire `json:"cheques"`
	Total        Monto        `json:"total"`
	Cerrada      bool         `json:"cerrada"`
}

func adaptarNomina(w nominaWire) entity.Nomina {
	cheques := make([]entity.Cheque, 0, len(w.Cheques))
	for _, ch := range w.Cheques {
		cheques = append(cheques, entity.Cheque{
			Numero:     ch.Numero,
			FacturaID:  ch.FacturaID,
			Folio:      ch.Folio,
			Proveedor:  ch.Proveedor,
			Monto:      ch.Monto.Decimal,
			Conciliado: ch.Conciliado,
		})
	}
	return entity.Nomina{
		ID:           w.ID,
		Numero:       w.Numero,
		Local:        w.Local,
		FechaPago:    w.FechaPago,
		ChequeInicio: w.ChequeInicio,
		Cheques:      cheques,
		Total:        w.Total.Decimal,
		Cerrada:      w.Cerrada,
	}
}

// Listar nóminas paginadas.
func (no *NominasClient) Listar(ctx context.Context, f FiltroNominas) (Pagina[entity.Nomina], error) {
	return listar(ctx, no.c, "/nominas", f.query(), adaptarNomina)
}

// Obtener una nómina con sus cheques.
func (no *NominasClient) Obtener(ctx context.Context, id string) (entity.Nomina, error) {
	var w nominaWire
	if err := no.c.Get(ctx, "/nominas/"+url.PathEscape(id), nil, &w); err != nil {
		return entity.Nomina{}, err
	}
	return adaptarNomina(w), nil
}

// ConciliarCheque marca un cheque del lote como cotejado contra el estado de
// cuenta y devuelve la nómina actualizada.
func (no *NominasClient) ConciliarCheque(ctx context.Context, nominaID string, numeroCheque int) (entity.Nomina, error) {
	path := "/nominas/" + url.PathEscape(nominaID) + "/cheques/" + strconv.Itoa(numeroCheque) + "/conciliar"
	var raw json.RawMessage
	if err := no.c.Put(ctx, path, nil, &raw); err != nil {
		return entity.Nomina{}, err
	}
	w, err := decodificarMutacion[nominaWire](raw)
	if err != nil {
		return entity.Nomina{}, err
	}
	return adaptarNomina(w), nil
}
