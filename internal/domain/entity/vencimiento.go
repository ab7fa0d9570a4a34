package entity

import "time"

// Estados de un registro de auditoría de caducidades.
const (
	VencimientoPendiente = "pendiente" // detectado, sin acción
	VencimientoRevisado  = "revisado"  // verificado en anaquel
	VencimientoRetirado  = "retirado"  // producto retirado de piso
)

// Vencimiento un producto próximo a caducar detectado en la auditoría de
// fechas de un local.
type Vencimiento struct {
	ID             string
	Local          string
	CodigoBarras   string
	Producto       string
	FechaCaducidad time.Time
	Cantidad       int
	Estado         string
	RegistradoPor  string
	Fecha          time.Time
}

// DiasRestantes días hasta la caducidad respecto de ahora (negativo si ya venció).
func (v Vencimiento) DiasRestantes(ahora time.Time) int {
	return int(v.FechaCaducidad.Sub(ahora).Hours() / 24)
}
