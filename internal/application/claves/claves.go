// Package claves centraliza la construcción de claves de cache y la tabla de
// invalidación. Toda clave se construye aquí para que ningún call site pueda
// omitir un parámetro del filtro (clave compartida entre filtros distintos) y
// para que la dependencia mutación → vistas afectadas viva en un solo lugar,
// verificable por tests, en vez de re-derivarse en cada handler.
package claves

import (
	"github.com/tu-usuario/super-backoffice/internal/cache"
)

// Recursos: primer segmento de toda clave. Invalidar [recurso] cubre la
// familia completa de vistas paginadas/filtradas de ese recurso.
const (
	RecFacturas     = "facturas"
	RecNotasCredito = "notasCredito"
	RecNominas      = "nominas"
	RecGastos       = "gastos"
	RecSaldoCaja    = "cajaChicaSaldo"
	RecEstadoCaja   = "cajaChicaEstado"
	RecEstadGastos  = "gastosEstadisticas"
	RecSesion       = "sesion"
	RecMovimientos  = "movimientos"
	RecVencimientos = "vencimientos"
	RecAuditorias   = "auditoriasPrecios"
	RecMetricas     = "metricas"
)

// ── Constructores de clave ────────────────────────────────────────────────────
// Cada parámetro que afecta el resultado entra en la clave, en posición fija.

func Facturas(limit, offset int, local, proveedor, desde, hasta string) cache.Key {
	return cache.NewKey(RecFacturas, limit, offset, local, proveedor, desde, hasta)
}

func FacturaPorFolio(folio string) cache.Key {
	return cache.NewKey(RecFacturas, "folio", folio)
}

func NotasCredito(limit, offset int, local, usuario, proveedor string) cache.Key {
	return cache.NewKey(RecNotasCredito, limit, offset, local, usuario, proveedor)
}

func Nominas(limit, offset int, local, desde, hasta string) cache.Key {
	return cache.NewKey(RecNominas, limit, offset, local, desde, hasta)
}

func Nomina(id string) cache.Key {
	return cache.NewKey(RecNominas, "id", id)
}

func Gastos(limit, offset int, usuario, local, estado, desde, hasta string) cache.Key {
	return cache.NewKey(RecGastos, limit, offset, usuario, local, estado, desde, hasta)
}

func SaldoCaja(usuario string) cache.Key {
	return cache.NewKey(RecSaldoCaja, usuario)
}

func EstadoCaja() cache.Key {
	return cache.NewKey(RecEstadoCaja)
}

func EstadisticasGastos() cache.Key {
	return cache.NewKey(RecEstadGastos)
}

func Sesion() cache.Key {
	return cache.NewKey(RecSesion)
}

func Movimientos(limit, offset int, local, tipo, desde, hasta string) cache.Key {
	return cache.NewKey(RecMovimientos, limit, offset, local, tipo, desde, hasta)
}

func Vencimientos(limit, offset int, local, estado string, diasMax int) cache.Key {
	return cache.NewKey(RecVencimientos, limit, offset, local, estado, diasMax)
}

func Auditorias(limit, offset int, local, desde, hasta string) cache.Key {
	return cache.NewKey(RecAuditorias, limit, offset, local, desde, hasta)
}

func Metricas() cache.Key {
	return cache.NewKey(RecMetricas)
}

// ── Tipos de mutación ─────────────────────────────────────────────────────────

const (
	MutCrearFactura          cache.TipoMutacion = "facturas.crear"
	MutActualizarMontoNota   cache.TipoMutacion = "notasCredito.actualizarMonto"
	MutCrearNota             cache.TipoMutacion = "notasCredito.crear"
	MutConciliarCheque       cache.TipoMutacion = "nominas.conciliarCheque"
	MutCrearGasto            cache.TipoMutacion = "gastos.crear"
	MutActualizarEstadoGasto cache.TipoMutacion = "gastos.actualizarEstado"
	MutRegistrarMovimiento   cache.TipoMutacion = "inventario.registrarMovimiento"
	MutRegistrarVencimiento  cache.TipoMutacion = "vencimientos.registrar"
	MutActualizarVencimiento cache.TipoMutacion = "vencimientos.actualizarEstado"
	MutRegistrarAuditoria    cache.TipoMutacion = "auditorias.registrar"
	MutLogin                 cache.TipoMutacion = "sesion.login"
	MutLogout                cache.TipoMutacion = "sesion.logout"
)

// Tabla tabla declarada mutación → prefijos afectados. Los recursos se juntan
// del lado del servidor (un gasto altera el saldo, el estado del fondo, la
// proyección de sesión y las estadísticas), así que ante la duda se declara
// el superset: sobre-invalidar solo cuesta un refetch.
var Tabla = cache.TablaInvalidacion{
	MutCrearFactura: {
		cache.Key{RecFacturas},
	},
	MutActualizarMontoNota: {
		cache.Key{RecNotasCredito},
	},
	MutCrearNota: {
		cache.Key{RecNotasCredito},
		cache.Key{RecFacturas}, // el contador de notas por factura cambia
	},
	MutConciliarCheque: {
		cache.Key{RecNominas},
	},
	MutCrearGasto: {
		cache.Key{RecGastos},
		cache.Key{RecSaldoCaja},
		cache.Key{RecEstadoCaja},
		cache.Key{RecSesion},
		cache.Key{RecEstadGastos},
	},
	MutActualizarEstadoGasto: {
		cache.Key{RecGastos},
		cache.Key{RecSaldoCaja},
		cache.Key{RecEstadoCaja},
		cache.Key{RecSesion},
		cache.Key{RecEstadGastos},
	},
	MutRegistrarMovimiento: {
		cache.Key{RecMovimientos},
	},
	MutRegistrarVencimiento: {
		cache.Key{RecVencimientos},
	},
	MutActualizarVencimiento: {
		cache.Key{RecVencimientos},
		cache.Key{RecMovimientos}, // retirar producto genera una merma
	},
	MutRegistrarAuditoria: {
		cache.Key{RecAuditorias},
	},
	MutLogin: {
		cache.Key{RecSesion},
	},
	MutLogout: {
		cache.Key{RecSesion},
		cache.Key{RecGastos},
		cache.Key{RecSaldoCaja},
	},
}
