package entity

// Metricas contadores operativos del backend, consultados por polling. El
// esquema del endpoint es laxo: los campos conocidos se tipan y el resto se
// conserva sin interpretar.
type Metricas struct {
	UptimeSegundos int64
	Peticiones     int64
	CacheHitRate   float64
	Extra          map[string]any // subestructuras desconocidas, toleradas
}
