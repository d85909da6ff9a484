// Package cache implementa la caché de reportes: una entrada por clave
// (tipo de reporte + parámetros), con intervalo de refresco por tipo,
// deduplicación de cómputos concurrentes e invalidación explícita con
// recomputación asíncrona.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// Separator separa tipo de reporte y parámetros dentro de la clave.
const Separator = "|"

const defaultComputeTimeout = 30 * time.Second

// Pipeline ejecuta el ciclo fetch + agregación de un reporte y devuelve su
// valor. La caché la conserva para poder recomputar tras una invalidación.
type Pipeline func(ctx context.Context) (any, error)

type entry struct {
	value      any
	computedAt time.Time
	stale      bool
	ttl        time.Duration // 0 = solo expira por invalidación
	pipeline   Pipeline
}

// ReportCache guarda el último resultado por clave. Una clave tiene a lo sumo
// un cómputo en vuelo: los llamadores concurrentes comparten el resultado
// (singleflight). Una entrada vencida se sigue sirviendo mientras un refresco
// corre en segundo plano; solo la primera población bloquea al llamador.
type ReportCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	log     *logger.Logger

	computeTimeout time.Duration
}

// New construye la caché.
func New(log *logger.Logger) *ReportCache {
	return &ReportCache{
		entries:        make(map[string]*entry),
		log:            log,
		computeTimeout: defaultComputeTimeout,
	}
}

// Key construye la clave de caché de un reporte parametrizado.
func Key(kind string, params ...string) string {
	if len(params) == 0 {
		return kind
	}
	return kind + Separator + strings.Join(params, Separator)
}

// Get devuelve el valor de la clave. Si hay un valor previo (aunque esté
// vencido o invalidado) se devuelve de inmediato y el refresco ocurre en
// segundo plano. Si la clave nunca se pobló, el cómputo es sincrónico y
// compartido entre llamadores concurrentes; abandonar el contexto del
// llamador no cancela el cómputo en vuelo de los demás.
func (c *ReportCache) Get(ctx context.Context, key string, ttl time.Duration, compute Pipeline) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		// Conservar el pipeline más reciente para recomputaciones futuras.
		e.pipeline = compute
		e.ttl = ttl
		fresh := !e.stale && (ttl == 0 || time.Since(e.computedAt) < ttl)
		v := e.value
		c.mu.Unlock()
		if !fresh {
			go c.refresh(key)
		}
		return v, nil
	}
	c.mu.Unlock()

	// Primera población: el cómputo corre con contexto propio para que siga
	// vivo aunque este llamador abandone; singleflight lo comparte.
	ch := c.group.DoChan(key, func() (any, error) {
		cctx, cancel := context.WithTimeout(context.Background(), c.computeTimeout)
		defer cancel()
		v, err := compute(cctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, ttl, compute)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate marca como vencidas todas las entradas del tipo dado y programa
// su recomputación asíncrona. No bloquea al emisor del evento de cambio.
func (c *ReportCache) Invalidate(kind string) {
	prefix := kind + Separator
	c.mu.Lock()
	var keys []string
	for k, e := range c.entries {
		if k == kind || strings.HasPrefix(k, prefix) {
			e.stale = true
			keys = append(keys, k)
		}
	}
	c.mu.Unlock()

	for _, k := range keys {
		go c.refresh(k)
	}
}

// Len devuelve el número de entradas pobladas.
func (c *ReportCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// refresh recomputa una clave con su último pipeline. Si el pipeline falla se
// conserva el valor anterior y solo se registra el error: un refresco perdido
// lo corrige el intervalo del tipo de reporte.
func (c *ReportCache) refresh(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.pipeline == nil {
		c.mu.Unlock()
		return
	}
	pipeline, ttl := e.pipeline, e.ttl
	c.mu.Unlock()

	_, err, _ := c.group.Do(key, func() (any, error) {
		cctx, cancel := context.WithTimeout(context.Background(), c.computeTimeout)
		defer cancel()
		v, err := pipeline(cctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v, ttl, pipeline)
		return v, nil
	})
	if err != nil && c.log != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("refresco de reporte fallido; se conserva el valor anterior")
	}
}

func (c *ReportCache) store(key string, v any, ttl time.Duration, pipeline Pipeline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{
		value:      v,
		computedAt: time.Now(),
		ttl:        ttl,
		pipeline:   pipeline,
	}
}

// Fetch envoltorio tipado sobre Get.
func Fetch[T any](ctx context.Context, c *ReportCache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Get(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: tipo inesperado en la clave %q: %T", key, v)
	}
	return out, nil
}
