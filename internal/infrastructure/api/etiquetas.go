package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/domain"
)

// EtiquetasClient renderiza etiquetas ZPL contra el servicio externo de
// renderizado (Labelary o compatible). Es un pass-through sin estado: el ZPL
// entra tal cual y sale un PNG; esta capa no interpreta el lenguaje de la
// impresora. Usa su propio http.Client porque el servicio es un tercero, no
// el backend autenticado.
type EtiquetasClient struct {
	renderURL  string
	httpClient *http.Client
}

// NewEtiquetasClient construye el cliente con un timeout corto: la vista de
// previsualización no debe quedarse colgada por un tercero lento.
func NewEtiquetasClient(renderURL string) *EtiquetasClient {
	return &EtiquetasClient{
		renderURL:  renderURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Render envía el cuerpo ZPL y devuelve la imagen PNG renderizada.
func (ec *EtiquetasClient) Render(ctx context.Context, zpl string) ([]byte, error) {
	if strings.TrimSpace(zpl) == "" {
		return nil, &domain.APIError{Kind: domain.KindValidacion, Message: "cuerpo ZPL vacío"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ec.renderURL, strings.NewReader(zpl))
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindDesconocido, Message: err.Error()}
	}
	req.Header.Set("Accept", "image/png")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ec.httpClient.Do(req)
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindRed, Message: "servicio de renderizado inaccesible: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		cuerpo, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &domain.APIError{
			Kind:    clasePorStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: "renderizado ZPL rechazado: " + strings.TrimSpace(string(cuerpo)),
		}
	}
	return io.ReadAll(resp.Body)
}
