package cache

// TipoMutacion identifica una mutación de negocio en la tabla de invalidación.
type TipoMutacion string

// TablaInvalidacion tabla declarada mutación → prefijos de clave afectados.
//
// Los recursos se juntan del lado del servidor, así que la dependencia entre
// una escritura y las vistas que refresca se declara explícita aquí (no se
// infiere en cada call site). Sub-invalidar sirve datos viejos en silencio;
// sobre-invalidar solo cuesta un round trip extra: ante la duda, el superset.
type TablaInvalidacion map[TipoMutacion][]Key

// Prefijos devuelve los prefijos afectados por la mutación. Una mutación no
// registrada devuelve nil: el caso de uso que la invoque debe declararla.
func (t TablaInvalidacion) Prefijos(tipo TipoMutacion) []Key {
	return t[tipo]
}

// Aplicar invalida en el cache todos los prefijos declarados para la
// mutación. No puede fallar: es una operación local e idempotente.
func (t TablaInvalidacion) Aplicar(c *Cache, tipo TipoMutacion) {
	for _, p := range t[tipo] {
		c.Invalidate(p)
	}
}
