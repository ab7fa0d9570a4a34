package api

import (
	"context"
	"encoding/json"

	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
)

// MetricasClient consulta los contadores operativos del backend. El esquema
// del endpoint es laxo: se tipan los campos conocidos y el resto se conserva
// en Extra sin interpretar, tolerando subestructuras desconocidas.
type MetricasClient struct {
	c *Client
}

// NewMetricasClient construye el cliente.
func NewMetricasClient(c *Client) *MetricasClient {
	return &MetricasClient{c: c}
}

// Obtener lee el endpoint de métricas del backend.
func (mc *MetricasClient) Obtener(ctx context.Context) (entity.Metricas, error) {
	raw, err := mc.c.GetRaw(ctx, "/metrics", nil)
	if err != nil {
		return entity.Metricas{}, err
	}

	var campos map[string]json.RawMessage
	if err := json.Unmarshal(raw, &campos); err != nil {
		return entity.Metricas{}, err
	}

	m := entity.Metricas{Extra: make(map[string]any)}
	for clave, v := range campos {
		switch clave {
		case "uptime_seconds", "uptime":
			_ = json.Unmarshal(v, &m.UptimeSegundos)
		case "requests", "peticiones":
			_ = json.Unmarshal(v, &m.Peticiones)
		case "cache_hit_rate":
			_ = json.Unmarshal(v, &m.CacheHitRate)
		default:
			var cualquiera any
			if err := json.Unmarshal(v, &cualquiera); err == nil {
				m.Extra[clave] = cualquiera
			}
		}
	}
	return m, nil
}
