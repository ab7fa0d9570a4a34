package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablaAplicarInvalidaTodosLosPrefijosDeclarados(t *testing.T) {
	c := nuevoCachePrueba()
	keyGastos := NewKey("gastos", 20, 0)
	keySaldo := NewKey("cajaChicaSaldo", "u1")
	keyOtra := NewKey("facturas", 20, 0)
	sembrar(t, c, keyGastos, "g")
	sembrar(t, c, keySaldo, "s")
	sembrar(t, c, keyOtra, "f")

	tabla := TablaInvalidacion{
		"gastos.crear": {Key{"gastos"}, Key{"cajaChicaSaldo"}},
	}
	tabla.Aplicar(c, "gastos.crear")

	assert.False(t, c.Inspeccionar(keyGastos).Fresca)
	assert.False(t, c.Inspeccionar(keySaldo).Fresca)
	assert.True(t, c.Inspeccionar(keyOtra).Fresca, "recursos no declarados quedan intactos")
}

func TestTablaMutacionNoRegistradaEsNoOp(t *testing.T) {
	c := nuevoCachePrueba()
	key := NewKey("facturas", 20, 0)
	sembrar(t, c, key, "f")

	tabla := TablaInvalidacion{}
	assert.Nil(t, tabla.Prefijos("desconocida"))
	tabla.Aplicar(c, "desconocida")

	assert.True(t, c.Inspeccionar(key).Fresca)
}
