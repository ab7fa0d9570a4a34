package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollerTickEjecutaDeInmediato(t *testing.T) {
	ejecuciones := make(chan struct{}, 4)
	p := NewPoller(time.Hour, 3, func(ctx context.Context) error {
		ejecuciones <- struct{}{}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	terminado := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(terminado)
	}()

	// Con intervalo de una hora, solo el tick manual puede disparar la ronda.
	p.Tick()
	select {
	case <-ejecuciones:
	case <-time.After(2 * time.Second):
		t.Fatal("el tick manual nunca ejecutó la consulta")
	}

	cancel()
	select {
	case <-terminado:
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó al cancelar el contexto")
	}
}

func TestPollerTickRepetidoNoSeAcumula(t *testing.T) {
	p := NewPoller(time.Hour, 3, func(ctx context.Context) error { return nil }, nil)

	// Sin Run consumiendo, el canal de ticks manuales tiene capacidad 1 y los
	// extras se descartan sin bloquear.
	hecho := make(chan struct{})
	go func() {
		p.Tick()
		p.Tick()
		p.Tick()
		close(hecho)
	}()
	select {
	case <-hecho:
	case <-time.After(time.Second):
		t.Fatal("Tick bloqueó al llamador")
	}
	assert.Len(t, p.manual, 1)
}

func TestEsperaBackoffEstiraYAcota(t *testing.T) {
	intervalo := 10 * time.Second

	// Por debajo del umbral de fallos el intervalo no cambia.
	assert.Equal(t, intervalo, esperaBackoff(intervalo, 0, 3))
	assert.Equal(t, intervalo, esperaBackoff(intervalo, 2, 3))

	// A partir del umbral se duplica en cada fallo, con tope de 8x.
	assert.Equal(t, 20*time.Second, esperaBackoff(intervalo, 3, 3))
	assert.Equal(t, 40*time.Second, esperaBackoff(intervalo, 4, 3))
	assert.Equal(t, 80*time.Second, esperaBackoff(intervalo, 5, 3))
	assert.Equal(t, 80*time.Second, esperaBackoff(intervalo, 9, 3))
}

func TestPollerAplicaBackoffTrasFallosConsecutivos(t *testing.T) {
	var rondas atomic.Int32
	p := NewPoller(10*time.Millisecond, 1, func(ctx context.Context) error {
		rondas.Add(1)
		return errors.New("backend caído")
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	// Sin backoff cabrían ~40 rondas; con esperas de 20/40/80/80ms tras cada
	// fallo el endpoint caído recibe muchas menos.
	assert.LessOrEqual(t, rondas.Load(), int32(12))
	assert.GreaterOrEqual(t, rondas.Load(), int32(2))
}

func TestPollerTickRestauraElIntervaloTrasBackoff(t *testing.T) {
	var falla atomic.Bool
	falla.Store(true)
	var rondas atomic.Int32
	p := NewPoller(time.Hour, 1, func(ctx context.Context) error {
		rondas.Add(1)
		if falla.Load() {
			return errors.New("backend caído")
		}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	terminado := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(terminado)
	}()

	// Primera ronda falla y deja al poller en backoff.
	p.Tick()
	assert.Eventually(t, func() bool { return rondas.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	// El tick manual no espera el backoff y el éxito restaura el conteo.
	falla.Store(false)
	p.Tick()
	assert.Eventually(t, func() bool { return rondas.Load() == 2 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-terminado
}
