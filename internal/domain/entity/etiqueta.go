package entity

import "github.com/shopspring/decimal"

// Etiqueta una etiqueta de anaquel lista para imprimir. El cuerpo ZPL se
// envía tal cual al servicio externo de renderizado; esta capa no lo
// interpreta.
type Etiqueta struct {
	CodigoBarras string
	Descripcion  string
	Precio       decimal.Decimal
	ZPL          string
}
