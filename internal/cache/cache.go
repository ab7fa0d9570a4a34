package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tu-usuario/super-backoffice/pkg/logger"
)

// Loader función que obtiene el valor de una consulta (normalmente una
// llamada al backend a través del cliente autenticado).
type Loader func(ctx context.Context) (any, error)

// Opciones política por consulta.
type Opciones struct {
	StaleTime time.Duration // frescura; 0 usa el default del cache
	Retry     int           // reintentos máximos para errores recuperables; -1 usa el default
}

// entrada estado interno de una clave. El dato solo se reemplaza completo
// tras un fetch exitoso, o a través de las rutas optimistas (mutation.go);
// nunca se muta en sitio por otro camino.
type entrada struct {
	data      any
	hayDato   bool
	err       error // último error de carga; el dato stale sigue visible
	fetchedAt time.Time
	staleTime time.Duration
	aplicada  uint64 // generación de la petición cuyo resultado está aplicado
}

// Cache cache de consultas del proceso, compartido por todas las vistas.
// Se construye una sola vez en el arranque y se inyecta; no es un singleton
// ambiental, lo que permite sustituirlo en tests.
type Cache struct {
	mu       sync.Mutex
	entradas map[string]*entrada
	gen      map[string]uint64 // contador de emisión de peticiones por clave
	grupo    singleflight.Group

	staleDefault time.Duration
	retryDefault int
	reloj        func() time.Time
	log          *logger.Logger
}

// New construye el cache con la política por defecto.
func New(staleDefault time.Duration, retryDefault int, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Componente("cache")
	return &Cache{
		entradas:     make(map[string]*entrada),
		gen:          make(map[string]uint64),
		staleDefault: staleDefault,
		retryDefault: retryDefault,
		reloj:        time.Now,
		log:          log,
	}
}

// ConReloj sustituye la fuente de tiempo; solo para tests.
func (c *Cache) ConReloj(ahora func() time.Time) { c.reloj = ahora }

// Fetch devuelve el valor de la clave aplicando stale-while-revalidate:
//
//   - entrada fresca: respuesta síncrona, el loader NO se invoca;
//   - entrada stale: se devuelve el dato viejo de inmediato y se revalida en
//     segundo plano;
//   - sin entrada: se invoca el loader, deduplicado por clave — varios
//     llamadores concurrentes comparten una sola llamada de red.
func (c *Cache) Fetch(ctx context.Context, key Key, loader Loader, opts Opciones) (any, error) {
	st := opts.StaleTime
	if st <= 0 {
		st = c.staleDefault
	}
	k := key.String()

	c.mu.Lock()
	if e, ok := c.entradas[k]; ok && e.hayDato {
		if c.reloj().Sub(e.fetchedAt) < e.staleTime {
			data := e.data
			c.mu.Unlock()
			return data, nil
		}
		// Stale: servir lo conocido y revalidar sin bloquear al llamador.
		data := e.data
		c.mu.Unlock()
		go func() {
			if _, err := c.cargar(context.WithoutCancel(ctx), key, loader, st, opts); err != nil {
				c.log.Warn().Str("clave", key[0]).Err(err).Msg("revalidación en segundo plano falló; se conserva el dato stale")
			}
		}()
		return data, nil
	}
	c.mu.Unlock()

	return c.cargar(ctx, key, loader, st, opts)
}

// Refetch carga la clave en primer plano, sin servir el dato stale: el error
// del loader llega al llamador. Es la ruta del polling, que necesita observar
// cada fallo para contarlo; las vistas siguen leyendo con Fetch. Un fallo no
// toca el dato conocido, solo deja el indicador de error.
func (c *Cache) Refetch(ctx context.Context, key Key, loader Loader, opts Opciones) (any, error) {
	st := opts.StaleTime
	if st <= 0 {
		st = c.staleDefault
	}
	return c.cargar(ctx, key, loader, st, opts)
}

// cargar emite una petición para la clave y aplica el resultado respetando el
// orden de emisión: la resolución tardía de una petición vieja nunca pisa la
// de una más nueva.
func (c *Cache) cargar(ctx context.Context, key Key, loader Loader, st time.Duration, opts Opciones) (any, error) {
	k := key.String()

	c.mu.Lock()
	c.gen[k]++
	g := c.gen[k]
	c.mu.Unlock()

	retry := opts.Retry
	if retry < 0 {
		retry = c.retryDefault
	}

	v, err, _ := c.grupo.Do(k, func() (any, error) {
		return conReintentos(ctx, loader, retry)
	})
	c.aplicar(k, g, v, err, st)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// aplicar escribe el resultado de la generación g si ninguna generación más
// nueva resolvió antes (guardia de carrera por clave).
func (c *Cache) aplicar(k string, g uint64, v any, err error, st time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entradas[k]
	if !ok {
		e = &entrada{}
		c.entradas[k] = e
	}
	if g < e.aplicada {
		// Respuesta tardía de una petición anterior: se descarta.
		return
	}
	e.aplicada = g
	if err != nil {
		// El dato previo (si lo hay) queda visible con indicador de error;
		// una falla transitoria de red no debe vaciar la vista.
		e.err = err
		return
	}
	e.data = v
	e.hayDato = true
	e.err = nil
	e.fetchedAt = c.reloj()
	e.staleTime = st
}

// Invalidate marca stale toda entrada cuya clave comience por el prefijo,
// forzando refetch en la siguiente lectura. No borra datos ni puede fallar;
// invalidar una entrada ya stale es un no-op.
func (c *Cache) Invalidate(prefijo Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entradas {
		if claveTienePrefijo(k, prefijo) {
			c.entradas[k].fetchedAt = time.Time{}
			// Una carga en vuelo para esta clave ya no representa el estado
			// deseado: la siguiente petición no debe adherirse a ella.
			c.grupo.Forget(k)
		}
	}
}

// Info estado observable de una entrada, para que la vista pueda mostrar
// "dato stale + indicador de error" en lugar de una pantalla vacía.
type Info struct {
	Data    any
	HayDato bool
	Fresca  bool
	Err     error
}

// Inspeccionar devuelve el estado actual de la clave sin disparar cargas.
func (c *Cache) Inspeccionar(key Key) Info {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entradas[key.String()]
	if !ok {
		return Info{}
	}
	return Info{
		Data:    e.data,
		HayDato: e.hayDato,
		Fresca:  e.hayDato && c.reloj().Sub(e.fetchedAt) < e.staleTime,
		Err:     e.err,
	}
}

// claveTienePrefijo compara la forma canónica contra un prefijo estructurado.
func claveTienePrefijo(k string, prefijo Key) bool {
	p := prefijo.String()
	if len(k) < len(p) {
		return false
	}
	if k[:len(p)] != p {
		return false
	}
	// O es la clave exacta o el siguiente byte es el separador de segmentos.
	return len(k) == len(p) || k[len(p):len(p)+1] == separador
}

// FetchAs variante tipada de Fetch; evita el type assert en cada caso de uso.
func FetchAs[T any](ctx context.Context, c *Cache, key Key, loader func(ctx context.Context) (T, error), opts Opciones) (T, error) {
	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	}, opts)
	if err != nil {
		var cero T
		return cero, err
	}
	// Las claves son por recurso, así que el tipo cacheado siempre coincide.
	t, _ := v.(T)
	return t, nil
}
