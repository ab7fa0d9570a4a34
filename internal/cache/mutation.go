package cache

import (
	"time"

	"github.com/google/uuid"
)

// EstadoMutacion estados de la máquina de una mutación optimista:
// idle → aplicada → (confirmada | revertida).
type EstadoMutacion int

const (
	MutacionIdle EstadoMutacion = iota
	MutacionAplicada
	MutacionConfirmada
	MutacionRevertida
)

// Transformacion deriva el nuevo valor de una entrada a partir del actual.
// Debe devolver un valor nuevo, nunca mutar el recibido en sitio.
type Transformacion func(data any) any

// snapshotEntrada copia verbatim del estado previo de una entrada, para
// restaurarla completa si el servidor rechaza la escritura.
type snapshotEntrada struct {
	data      any
	hayDato   bool
	err       error
	fetchedAt time.Time
}

// MutacionOptimista una escritura en vuelo con su transformación especulativa
// ya aplicada al cache. Al iniciar se toma snapshot de TODAS las entradas
// tocadas; la segunda mutación sobre el mismo registro toma snapshot del
// estado ya optimista de la primera, de modo que revertir la segunda no borra
// el efecto aún pendiente de la primera.
type MutacionOptimista struct {
	c         *Cache
	ID        string
	Estado    EstadoMutacion
	snapshots map[string]snapshotEntrada
}

// IniciarMutacion toma snapshot de las entradas bajo los prefijos dados y les
// aplica la transformación especulativa. La vista ve el estado "actualizando"
// de inmediato, sin esperar al servidor.
func (c *Cache) IniciarMutacion(prefijos []Key, aplicar Transformacion) *MutacionOptimista {
	m := &MutacionOptimista{
		c:         c,
		ID:        uuid.New().String(),
		Estado:    MutacionAplicada,
		snapshots: make(map[string]snapshotEntrada),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entradas {
		if !e.hayDato || !coincideAlguno(k, prefijos) {
			continue
		}
		m.snapshots[k] = snapshotEntrada{
			data:      e.data,
			hayDato:   e.hayDato,
			err:       e.err,
			fetchedAt: e.fetchedAt,
		}
		e.data = aplicar(e.data)
	}

	c.log.Debug().Str("mutacion", m.ID).Int("entradas", len(m.snapshots)).Msg("mutación optimista aplicada")
	return m
}

// Confirmar aplica a las entradas tocadas el valor que el servidor devolvió
// (que puede diferir del especulativo si el servidor lo normalizó) y cierra
// la mutación. La invalidación de vistas dependientes corre por cuenta del
// caso de uso, según la tabla declarada.
func (m *MutacionOptimista) Confirmar(aplicar Transformacion) {
	if m.Estado != MutacionAplicada {
		return
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	for k := range m.snapshots {
		if e, ok := m.c.entradas[k]; ok && e.hayDato {
			e.data = aplicar(e.data)
		}
	}
	m.Estado = MutacionConfirmada
}

// Revertir restaura verbatim cada entrada snapshoteada (la entrada completa,
// no solo un campo): tras revertir no queda rastro del valor especulativo.
func (m *MutacionOptimista) Revertir() {
	if m.Estado != MutacionAplicada {
		return
	}
	m.c.mu.Lock()
	defer m.c.mu.Unlock()
	for k, s := range m.snapshots {
		e, ok := m.c.entradas[k]
		if !ok {
			e = &entrada{}
			m.c.entradas[k] = e
		}
		e.data = s.data
		e.hayDato = s.hayDato
		e.err = s.err
		e.fetchedAt = s.fetchedAt
	}
	m.Estado = MutacionRevertida
	m.c.log.Debug().Str("mutacion", m.ID).Msg("mutación optimista revertida")
}

func coincideAlguno(k string, prefijos []Key) bool {
	for _, p := range prefijos {
		if claveTienePrefijo(k, p) {
			return true
		}
	}
	return false
}
