package estado

import (
	"context"
	"time"

	"github.com/tu-usuario/super-backoffice/internal/application/claves"
	"github.com/tu-usuario/super-backoffice/internal/cache"
	"github.com/tu-usuario/super-backoffice/internal/domain/entity"
	"github.com/tu-usuario/super-backoffice/internal/infrastructure/api"
	"github.com/tu-usuario/super-backoffice/pkg/logger"
)

// UseCase vista de estado operativo del backend. Las métricas se refrescan
// por polling; el resto de las vistas solo lee del cache.
type UseCase struct {
	cache   *cache.Cache
	api     *api.MetricasClient
	poller  *cache.Poller
	opts    cache.Opciones
	timeout time.Duration
}

// NewUseCase construye el caso de uso. intervalo gobierna el polling y a la
// vez la frescura de la entrada: una métrica más vieja que un ciclo ya no es
// actual. timeout acota cada ronda de polling por separado del timeout
// general del cliente; 0 lo desactiva.
func NewUseCase(c *cache.Cache, cliente *api.MetricasClient, intervalo, timeout time.Duration, maxFallos int, log *logger.Logger) *UseCase {
	uc := &UseCase{
		cache:   c,
		api:     cliente,
		opts:    cache.Opciones{StaleTime: intervalo, Retry: 0},
		timeout: timeout,
	}
	uc.poller = cache.NewPoller(intervalo, maxFallos, uc.refrescar, log)
	return uc
}

// Metricas devuelve las métricas cacheadas; si no hay ronda previa, consulta.
func (uc *UseCase) Metricas(ctx context.Context) (entity.Metricas, error) {
	return cache.FetchAs(ctx, uc.cache, claves.Metricas(), uc.api.Obtener, uc.opts)
}

// Estado estado observable de la vista: dato conocido, frescura y último
// error, para mostrar "stale + indicador" en vez de una pantalla vacía.
func (uc *UseCase) Estado() cache.Info {
	return uc.cache.Inspeccionar(claves.Metricas())
}

// Refrescar fuerza una ronda inmediata (botón de refresco manual).
func (uc *UseCase) Refrescar() {
	uc.poller.Tick()
}

// Run ejecuta el ciclo de polling hasta que el contexto se cancele.
func (uc *UseCase) Run(ctx context.Context) { uc.poller.Run(ctx) }

// refrescar ejecuta una ronda de polling. Carga en primer plano con Refetch:
// el fallo de la ronda debe llegar al poller para que cuente fallos
// consecutivos y aplique backoff; la ruta stale-while-revalidate de Fetch se
// lo tragaría en segundo plano.
func (uc *UseCase) refrescar(ctx context.Context) error {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}
	_, err := uc.cache.Refetch(ctx, claves.Metricas(), func(ctx context.Context) (any, error) {
		return uc.api.Obtener(ctx)
	}, uc.opts)
	return err
}
