package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/super-backoffice/internal/domain"
	"github.com/tu-usuario/super-backoffice/pkg/logger"
)

// Credencial puerto del almacén de sesión que el cliente necesita: leer el
// token vigente en cada petición y limpiarlo ante un 401.
type Credencial interface {
	Token() string
	Clear() error
}

// Client cliente HTTP autenticado contra el backend REST. Usa net/http de la
// stdlib con timeout explícito y cookiejar (el backend usa cookies de sesión
// además del Bearer). Todo error sale normalizado como *domain.APIError;
// esta capa nunca se traga un error ni deja pasar uno crudo.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cred       Credencial
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin slash final.
func NewClient(baseURL string, timeout time.Duration, cred Credencial, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Componente("backend")
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		cred: cred,
		log:  log,
	}
}

// Get emite un GET y decodifica la respuesta JSON en out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// GetRaw emite un GET y devuelve el cuerpo sin decodificar, para los sobres
// de listado cuyo adaptador necesita el JSON crudo.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Post emite un POST con cuerpo JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put emite un PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete emite un DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Kind: domain.KindDesconocido, Message: "serializar cuerpo: " + err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &domain.APIError{Kind: domain.KindDesconocido, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	// El token se lee del almacén EN CADA petición: una credencial recién
	// emitida se usa sin reiniciar el proceso.
	if tok := c.cred.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.clasificarErrorDeRed(method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		apiErr := normalizarError(resp.StatusCode, raw)
		if apiErr.Kind == domain.KindAutenticacion {
			// Sesión inválida: la credencial almacenada ya no sirve.
			if cerr := c.cred.Clear(); cerr != nil {
				c.log.Warn().Err(cerr).Msg("no se pudo limpiar la credencial tras un 401")
			}
		}
		c.log.Debug().Str("metodo", method).Str("ruta", path).Int("status", resp.StatusCode).Str("clase", apiErr.Kind.String()).Msg("error del backend")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{Kind: domain.KindDesconocido, Status: resp.StatusCode, Message: "respuesta ilegible: " + err.Error()}
	}
	return nil
}

// clasificarErrorDeRed distingue timeout de falla de conectividad: producen
// mensajes de usuario distintos aunque ambos sean reintentables.
func (c *Client) clasificarErrorDeRed(method, path string, err error) error {
	kind := domain.KindRed
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		kind = domain.KindTimeout
	} else if errors.Is(err, context.DeadlineExceeded) {
		kind = domain.KindTimeout
	}
	c.log.Debug().Str("metodo", method).Str("ruta", path).Str("clase", kind.String()).Err(err).Msg("fallo de red")
	return &domain.APIError{Kind: kind, Message: err.Error()}
}

// ── Normalización de sobres de error del backend ──────────────────────────────

// sobreError cubre las dos formas que envía el backend:
// {"error":{"code","message","details"}} y {"message"} plano (a veces con
// "code" suelto). Se decodifica a la defensiva: cualquier campo puede faltar.
type sobreError struct {
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// normalizarError convierte status + cuerpo en un *domain.APIError con la
// clase correcta. Nunca falla: un cuerpo ilegible produce la variante
// "sin estructura" con solo el status.
func normalizarError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Status: status, Kind: clasePorStatus(status)}

	var sobre sobreError
	if err := json.Unmarshal(raw, &sobre); err == nil {
		switch {
		case sobre.Error != nil:
			apiErr.Code = sobre.Error.Code
			apiErr.Message = sobre.Error.Message
			apiErr.Detalles = decodificarDetalles(sobre.Error.Details)
		case sobre.Message != "":
			apiErr.Code = sobre.Code
			apiErr.Message = sobre.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("el backend respondió %d", status)
	}
	return apiErr
}

// decodificarDetalles extrae errores por campo si el servidor los envió
// estructurados; tolera mapas de string o de listas de string.
func decodificarDetalles(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var planos map[string]string
	if err := json.Unmarshal(raw, &planos); err == nil && len(planos) > 0 {
		return planos
	}
	var listas map[string][]string
	if err := json.Unmarshal(raw, &listas); err == nil && len(listas) > 0 {
		out := make(map[string]string, len(listas))
		for campo, msgs := range listas {
			out[campo] = strings.Join(msgs, "; ")
		}
		return out
	}
	return nil
}

func clasePorStatus(status int) domain.Kind {
	switch {
	case status == http.StatusUnauthorized:
		return domain.KindAutenticacion
	case status == http.StatusForbidden:
		return domain.KindPermiso
	case status == http.StatusNotFound:
		return domain.KindNoEncontrado
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.KindValidacion
	case status == http.StatusConflict:
		return domain.KindConflicto
	case status == http.StatusRequestTimeout:
		return domain.KindTimeout
	case status >= 500:
		return domain.KindServidor
	default:
		return domain.KindDesconocido
	}
}
