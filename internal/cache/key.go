package cache

import (
	"fmt"
	"strings"
)

// Key clave estructurada de una consulta: recurso + todos los parámetros que
// afectan el resultado (página, límite, filtros activos). Dos tuplas de
// parámetros distintas producen claves distintas y jamás comparten entrada.
type Key []string

// NewKey construye una clave a partir del recurso y sus parámetros. Los
// parámetros se serializan en orden; un filtro ausente debe pasarse como
// cadena vacía para que la posición siga siendo estable.
func NewKey(recurso string, params ...any) Key {
	k := make(Key, 0, len(params)+1)
	k = append(k, recurso)
	for _, p := range params {
		k = append(k, fmt.Sprint(p))
	}
	return k
}

// separador no imprimible para que "a"+"bc" y "ab"+"c" no colisionen.
const separador = "\x1f"

// String codificación canónica de la clave (índice interno del cache).
func (k Key) String() string {
	return strings.Join(k, separador)
}

// TienePrefijo informa si la clave comienza con todos los segmentos de prefijo.
// Un prefijo de un solo segmento ([recurso]) cubre la familia completa de
// vistas paginadas/filtradas de ese recurso.
func (k Key) TienePrefijo(prefijo Key) bool {
	if len(prefijo) > len(k) {
		return false
	}
	for i, seg := range prefijo {
		if k[i] != seg {
			return false
		}
	}
	return true
}
