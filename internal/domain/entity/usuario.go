package entity

import "github.com/shopspring/decimal"

// Usuario proyección de sesión/usuario que el backend expone. Incluye el
// saldo de caja chica asignado porque la cabecera de la UI lo muestra junto
// al nombre; por eso las mutaciones de gastos también invalidan esta vista.
type Usuario struct {
	ID             string
	Nombre         string
	Rol            string
	Local          string
	SaldoCajaChica decimal.Decimal
}
