package api

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// CajaChicaClient operaciones de gastos reembolsables y del fondo de caja chica.
type CajaChicaClient struct {
	c *Client
}

// NewCajaChicaClient construye el cliente.
func NewCajaChicaClient(c *Client) *CajaChicaClient {
	return &CajaChicaClient{c: c}
}

// FiltroGastos parámetros de listado de gastos.
type FiltroGastos struct {
	Limit     int
	Offset    int
	UsuarioID string
	Local     string
	Estado    string
	Desde     string
	Hasta     string
}

func (f FiltroGastos) query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("offset", strconv.Itoa(f.Offset))
	if f.UsuarioID != "" {
		q.Set("usuario", f.UsuarioID)
	}
	if f.Local != "" {
		q.Set("local", f.Local)
	}
	if f.Estado != "" {
		q.Set("estado", f.Estado)
	}
	if f.Desde != "" {
		q.Set("desde", f.Desde)
	}
	if f.Hasta != "" {
		q.Set("hasta", f.Hasta)
	}
	return q
}

type gastoWire struct {
	ID             string    `json:"id"`
	UsuarioID      string    `json:"usuario_id"`
	Usuario        string    `json:"usuario"`
	Local          string    `json:"local"`
	Concepto       string    `json:"concepto"`
	Monto          Monto     `json:"monto"`
	Fecha          time.Time `json:"fecha"`
	Estado         string    `json:"estado"`
	ComprobanteURL string    `json:"comprobante_url"`
}

func adaptarGasto(w gastoWire) entity.Gasto {
	return entity.Gasto{
		ID:             w.ID,
		UsuarioID:      w.UsuarioID,
		Usuario:        w.Usuario,
		Local:          w.Local,
		Concepto:       w.Concepto,
		Monto:          w.Monto.Decimal,
		Fecha:          w.Fecha,
		Estado:         w.Estado,
		ComprobanteURL: adaptarURLDrive(w.ComprobanteURL),
	}
}

// ListarGastos gastos paginados con filtros.
func (cc *CajaChicaClient) ListarGastos(ctx context.Context, f FiltroGastos) (Pagina[entity.Gasto], error) {
	return listar(ctx, cc.c, "/gastos", f.query(), adaptarGasto)
}

// CrearGastoRequest alta de un gasto de caja chica.
type CrearGastoRequest struct {
	Concepto       string `json:"concepto"`
	Monto          string `json:"monto"`
	Local          string `json:"local"`
	Fecha          string `json:"fecha"`
	ComprobanteURL string `json:"comprobante_url,omitempty"`
}

// CrearGasto registra el gasto; el backend valida el saldo disponible y puede
// rechazar con regla de negocio (saldo insuficiente).
func (cc *CajaChicaClient) CrearGasto(ctx context.Context, req CrearGastoRequest) (entity.Gasto, error) {
	var raw json.RawMessage
	if err := cc.c.Post(ctx, "/gastos", req, &raw); err != nil {
		return entity.Gasto{}, err
	}
	w, err := decodificarMutacion[gastoWire](raw)
	if err != nil {
		return entity.Gasto{}, err
	}
	return adaptarGasto(w), nil
}

// ActualizarEstadoGasto aprueba o rechaza un gasto pendiente.
func (cc *CajaChicaClient) ActualizarEstadoGasto(ctx context.Context, id, estado string) (entity.Gasto, error) {
	body := map[string]string{"estado": estado}
	var raw json.RawMessage
	if err := cc.c.Put(ctx, "/gastos/"+url.PathEscape(id)+"/estado", body, &raw); err != nil {
		return entity.Gasto{}, err
	}
	w, err := decodificarMutacion[gastoWire](raw)
	if err != nil {
		return entity.Gasto{}, err
	}
	return adaptarGasto(w), nil
}

type saldoWire struct {
	UsuarioID  string `json:"usuario_id"`
	Asignado   Monto  `json:"asignado"`
	Gastado    Monto  `json:"gastado"`
	Disponible Monto  `json:"disponible"`
}

// Saldo saldo del fondo del usuario, calculado por el servidor.
func (cc *CajaChicaClient) Saldo(ctx context.Context, usuarioID string) (entity.SaldoCajaChica, error) {
	var w saldoWire
	q := url.Values{}
	q.Set("usuario", usuarioID)
	if err := cc.c.Get(ctx, "/caja-chica/saldo", q, &w); err != nil {
		return entity.SaldoCajaChica{}, err
	}
	return entity.SaldoCajaChica{
		UsuarioID:  w.UsuarioID,
		Asignado:   w.Asignado.Decimal,
		Gastado:    w.Gastado.Decimal,
		Disponible: w.Disponible.Decimal,
	}, nil
}

type estadoCajaWire struct {
	Estado      string    `json:"estado"`
	CorteAl     time.Time `json:"corte_al"`
	Observacion string    `json:"observacion"`
}

// Estado estado operativo del fondo (abierto, en corte, cerrado).
func (cc *CajaChicaClient) Estado(ctx context.Context) (entity.EstadoCajaChica, error) {
	var w estadoCajaWire
	if err := cc.c.Get(ctx, "/caja-chica/estado", nil, &w); err != nil {
		return entity.EstadoCajaChica{}, err
	}
	return entity.EstadoCajaChica{Estado: w.Estado, CorteAl: w.CorteAl, Observacion: w.Observacion}, nil
}

// ResumenGastos agregados del mes en curso para el tablero.
type ResumenGastos struct {
	TotalMes  Monto `json:"total_mes"`
	NumGastos int   `json:"num_gastos"`
}

// Estadisticas agregados de gastos que el tablero muestra junto al listado.
func (cc *CajaChicaClient) Estadisticas(ctx context.Context) (ResumenGastos, error) {
	var r ResumenGastos
	if err := cc.c.Get(ctx, "/gastos/estadisticas", nil, &r); err != nil {
		return ResumenGastos{}, err
	}
	return r, nil
}
