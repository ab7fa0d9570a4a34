package api

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/super-backoffice/internal/domain"
)

// Pagina resultado de un listado ya adaptado al modelo de vista.
type Pagina[T any] struct {
	Items []T
	Total int
}

// sobreLista sobre de listados del backend: {"data":[...]} con el total en
// "total_registros" o en "total" según el endpoint; se aceptan ambos.
type sobreLista struct {
	Data           json.RawMessage `json:"data"`
	Total          *int            `json:"total"`
	TotalRegistros *int            `json:"total_registros"`
}

// decodificarLista decodifica el sobre y adapta cada elemento con fn.
func decodificarLista[W, T any](raw []byte, fn func(W) T) (Pagina[T], error) {
	var sobre sobreLista
	if err := json.Unmarshal(raw, &sobre); err != nil {
		return Pagina[T]{}, err
	}
	var wires []W
	if len(sobre.Data) > 0 {
		if err := json.Unmarshal(sobre.Data, &wires); err != nil {
			return Pagina[T]{}, err
		}
	}
	items := make([]T, 0, len(wires))
	for _, w := range wires {
		items = append(items, fn(w))
	}
	total := len(items)
	switch {
	case sobre.TotalRegistros != nil:
		total = *sobre.TotalRegistros
	case sobre.Total != nil:
		total = *sobre.Total
	}
	return Pagina[T]{Items: items, Total: total}, nil
}

// listar GET + sobre de listado + adaptación wire → entidad, en un paso.
func listar[W, T any](ctx context.Context, c *Client, path string, query url.Values, fn func(W) T) (Pagina[T], error) {
	raw, err := c.GetRaw(ctx, path, query)
	if err != nil {
		return Pagina[T]{}, err
	}
	pag, err := decodificarLista(raw, fn)
	if err != nil {
		return Pagina[T]{}, &domain.APIError{Kind: domain.KindDesconocido, Message: "adaptar listado: " + err.Error()}
	}
	return pag, nil
}

// sobreMutacion sobre de respuesta de mutaciones: algunos endpoints devuelven
// el recurso directo y otros {"success","data","message"}; se aceptan ambos.
func decodificarMutacion[W any](raw json.RawMessage) (W, error) {
	var sobre struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &sobre); err == nil && len(sobre.Data) > 0 {
		raw = sobre.Data
	}
	var w W
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, &domain.APIError{Kind: domain.KindDesconocido, Message: "adaptar respuesta de mutación: " + err.Error()}
	}
	return w, nil
}

// Monto monto monetario tal como viaja en el wire: el backend lo envía a
// veces como número y a veces como string. Siempre se redondea a centavos.
type Monto struct {
	decimal.Decimal
}

// UnmarshalJSON acepta número o string; vacío o null valen cero.
func (m *Monto) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.Decimal = d.Round(2)
	return nil
}

// driveRe captura el ID de archivo de una URL de visor de Google Drive.
var driveRe = regexp.MustCompile(`drive\.google\.com/file/d/([\w-]+)`)

// adaptarURLDrive reescribe las URLs de visor de Drive a su forma de
// descarga directa, que es la que la vista puede incrustar.
func adaptarURLDrive(u string) string {
	if m := driveRe.FindStringSubmatch(u); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	return u
}

// normalizador quita marcas diacríticas: "Almacén" y "almacen" deben casar
// en los filtros de búsqueda locales.
var normalizador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarBusqueda minúsculas y sin acentos, para comparar términos de
// búsqueda del usuario contra nombres de proveedor/producto.
func NormalizarBusqueda(s string) string {
	limpio, _, err := transform.String(normalizador, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}

// ContieneNormalizado informa si s contiene el término ya normalizado,
// comparando sin mayúsculas ni acentos.
func ContieneNormalizado(s, terminoNormalizado string) bool {
	return strings.Contains(NormalizarBusqueda(s), terminoNormalizado)
}
