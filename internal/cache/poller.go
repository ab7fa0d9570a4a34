package cache

import (
	"context"
	"time"

	"github.com/tu-usuario/super-backoffice/pkg/logger"
)

// Poller ejecuta una función a intervalo fijo (vistas de métricas/estado).
// Tras maxFallos fallos consecutivos duplica el intervalo hasta un tope para
// no martillar un endpoint caído; un éxito o un Tick manual restauran el
// intervalo normal.
type Poller struct {
	intervalo time.Duration
	maxFallos int
	fn        func(ctx context.Context) error
	log       *logger.Logger

	manual chan struct{}
}

// NewPoller construye el poller. fn es la consulta a ejecutar en cada tick.
func NewPoller(intervalo time.Duration, maxFallos int, fn func(ctx context.Context) error, log *logger.Logger) *Poller {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Componente("poller")
	if maxFallos <= 0 {
		maxFallos = 3
	}
	return &Poller{
		intervalo: intervalo,
		maxFallos: maxFallos,
		fn:        fn,
		log:       log,
		manual:    make(chan struct{}, 1),
	}
}

// Tick fuerza una ejecución inmediata (interacción manual del usuario) y
// restaura el intervalo normal si había backoff.
func (p *Poller) Tick() {
	select {
	case p.manual <- struct{}{}:
	default: // ya hay un tick manual pendiente
	}
}

// esperaBackoff espera hasta el próximo tick según los fallos acumulados:
// intervalo normal por debajo del umbral, duplicación acotada a partir de él.
func esperaBackoff(intervalo time.Duration, fallos, maxFallos int) time.Duration {
	const tope = 8 // multiplicador máximo del intervalo
	if fallos < maxFallos {
		return intervalo
	}
	mult := 1 << (fallos - maxFallos + 1)
	if mult > tope {
		mult = tope
	}
	return intervalo * time.Duration(mult)
}

// Run ejecuta el ciclo de polling hasta que el contexto se cancele.
func (p *Poller) Run(ctx context.Context) {
	fallos := 0
	espera := p.intervalo
	timer := time.NewTimer(espera)
	defer timer.Stop()

	ejecutar := func() {
		if err := p.fn(ctx); err != nil {
			fallos++
			espera = esperaBackoff(p.intervalo, fallos, p.maxFallos)
			if fallos >= p.maxFallos {
				p.log.Warn().Int("fallos", fallos).Dur("espera", espera).Err(err).Msg("polling en backoff por fallos consecutivos")
			}
			return
		}
		fallos = 0
		espera = p.intervalo
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.manual:
			fallos = 0
			espera = p.intervalo
			ejecutar()
		case <-timer.C:
			ejecutar()
		}
		timer.Reset(espera)
	}
}
