package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sembrar puebla una entrada fresca con el valor dado.
func sembrar(t *testing.T, c *Cache, key Key, v any) {
	t.Helper()
	_, err := c.Fetch(context.Background(), key, func(ctx context.Context) (any, error) {
		return v, nil
	}, Opciones{})
	require.NoError(t, err)
}

func TestMutacionOptimistaAplicaYConfirmaConValorDelServidor(t *testing.T) {
	c := nuevoCachePrueba()
	key := NewKey("notasCredito", 20, 0)
	sembrar(t, c, key, "confirmado-previo")

	m := c.IniciarMutacion([]Key{{"notasCredito"}}, func(any) any { return "especulativo" })
	assert.Equal(t, MutacionAplicada, m.Estado)
	assert.Equal(t, "especulativo", c.Inspeccionar(key).Data, "la vista ve el estado optimista de inmediato")

	// El servidor puede normalizar el valor: el suyo manda, no el especulativo.
	m.Confirmar(func(any) any { return "normalizado-por-servidor" })
	assert.Equal(t, MutacionConfirmada, m.Estado)
	assert.Equal(t, "normalizado-por-servidor", c.Inspeccionar(key).Data)

	// Confirmar de nuevo es un no-op: la máquina ya cerró.
	m.Confirmar(func(any) any { return "otra-cosa" })
	assert.Equal(t, "normalizado-por-servidor", c.Inspeccionar(key).Data)
}

func TestMutacionOptimistaRevierteVerbatim(t *testing.T) {
	c := nuevoCachePrueba()
	ahora := time.Now()
	c.ConReloj(func() time.Time { return ahora })

	key := NewKey("notasCredito", 20, 0)
	sembrar(t, c, key, "original")
	antes := c.Inspeccionar(key)

	m := c.IniciarMutacion([]Key{{"notasCredito"}}, func(any) any { return "especulativo" })
	m.Revertir()

	despues := c.Inspeccionar(key)
	assert.Equal(t, MutacionRevertida, m.Estado)
	assert.Equal(t, "original", despues.Data, "tras revertir no queda rastro del valor especulativo")
	assert.Equal(t, antes.Fresca, despues.Fresca)

	// Revertida, ya no se puede confirmar.
	m.Confirmar(func(any) any { return "tarde" })
	assert.Equal(t, "original", c.Inspeccionar(key).Data)
}

func TestSegundaMutacionTomaSnapshotDelEstadoYaOptimista(t *testing.T) {
	c := nuevoCachePrueba()
	key := NewKey("notasCredito", 20, 0)
	sembrar(t, c, key, "v0")

	m1 := c.IniciarMutacion([]Key{{"notasCredito"}}, func(any) any { return "m1" })
	m2 := c.IniciarMutacion([]Key{{"notasCredito"}}, func(any) any { return "m2" })
	assert.Equal(t, "m2", c.Inspeccionar(key).Data)

	// Revertir la segunda restaura el estado optimista de la primera, no v0.
	m2.Revertir()
	assert.Equal(t, "m1", c.Inspeccionar(key).Data)

	m1.Revertir()
	assert.Equal(t, "v0", c.Inspeccionar(key).Data)
}

func TestMutacionSoloTocaEntradasBajoSusPrefijos(t *testing.T) {
	c := nuevoCachePrueba()
	keyNotas := NewKey("notasCredito", 20, 0)
	keyGastos := NewKey("gastos", 20, 0)
	sembrar(t, c, keyNotas, "nota")
	sembrar(t, c, keyGastos, "gasto")

	m := c.IniciarMutacion([]Key{{"notasCredito"}}, func(any) any { return "tocada" })

	assert.Equal(t, "tocada", c.Inspeccionar(keyNotas).Data)
	assert.Equal(t, "gasto", c.Inspeccionar(keyGastos).Data)

	m.Revertir()
	assert.Equal(t, "nota", c.Inspeccionar(keyNotas).Data)
	assert.Equal(t, "gasto", c.Inspeccionar(keyGastos).Data)
}
