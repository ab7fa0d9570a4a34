package dto

import "github.com/tu-usuario/super-backoffice/internal/domain/entity"

// MetricasResponse contadores operativos del backend.
type MetricasResponse struct {
	UptimeSegundos int64          `json:"uptime_segundos"`
	Peticiones     int64          `json:"peticiones"`
	CacheHitRate   float64        `json:"cache_hit_rate"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// FromMetricas adapta la entidad a su DTO de respuesta.
func FromMetricas(m entity.Metricas) MetricasResponse {
	return MetricasResponse{
		UptimeSegundos: m.UptimeSegundos,
		Peticiones:     m.Peticiones,
		CacheHitRate:   m.CacheHitRate,
		Extra:          m.Extra,
	}
}

// EstadoResponse estado observable de la vista de métricas: el último dato
// conocido junto con su frescura y el último error de carga, para que la UI
// muestre "stale + indicador" en vez de una pantalla vacía.
type EstadoResponse struct {
	Metricas *MetricasResponse `json:"metricas,omitempty"`
	Fresca   bool              `json:"fresca"`
	Error    string            `json:"error,omitempty"`
}
