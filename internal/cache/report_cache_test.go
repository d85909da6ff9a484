package cache_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oroplan-admin/internal/cache"
)

func TestKey_ConYSinParametros(t *testing.T) {
	assert.Equal(t, "dashboard_metrics", cache.Key("dashboard_metrics"))
	assert.Equal(t, "daily_report|2024-05-10", cache.Key("daily_report", "2024-05-10"))
	assert.Equal(t, "staff_performance|2024-05-01|2024-05-05",
		cache.Key("staff_performance", "2024-05-01", "2024-05-05"))
}

func TestGet_PrimeraPoblacionEsSincronica(t *testing.T) {
	c := cache.New(nil)
	var calls atomic.Int32

	v, err := c.Get(context.Background(), "k", 0, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "reporte", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "reporte", v)
	assert.Equal(t, 1, c.Len())

	// Sin TTL la entrada solo vence por invalidación: no hay recomputo.
	v, err = c.Get(context.Background(), "k", 0, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "otro", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "reporte", v)
	assert.Equal(t, int32(1), calls.Load())
}

// Llamadores concurrentes de una clave sin poblar comparten un solo cómputo.
func TestGet_ConcurrentesCompartenUnSoloComputo(t *testing.T) {
	c := cache.New(nil)
	var calls atomic.Int32
	release := make(chan struct{})

	compute := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "compartido", nil
	}

	const callers = 25
	results := make(chan any, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "k", 0, compute)
			assert.NoError(t, err)
			results <- v
		}()
	}
	// Dar tiempo a que todos queden bloqueados en el cómputo compartido.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	assert.Equal(t, int32(1), calls.Load(), "un solo cómputo en vuelo por clave")
	for v := range results {
		assert.Equal(t, "compartido", v)
	}
}

// Una entrada vencida se sirve de inmediato y el refresco corre aparte.
func TestGet_VencidaSeSirveYRefrescaEnSegundoPlano(t *testing.T) {
	c := cache.New(nil)
	var calls atomic.Int32

	compute := func(ctx context.Context) (any, error) {
		return fmt.Sprintf("v%d", calls.Add(1)), nil
	}

	v, err := c.Get(context.Background(), "k", time.Millisecond, compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	time.Sleep(10 * time.Millisecond) // deja vencer el TTL

	// El llamador no espera el recomputo: recibe el valor anterior.
	v, err = c.Get(context.Background(), "k", time.Millisecond, compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	// El refresco en segundo plano termina y la clave queda al día.
	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond, "el refresco debió ejecutarse")
}

func TestInvalidate_MarcaPorTipoYRecomputa(t *testing.T) {
	c := cache.New(nil)
	var detail, other atomic.Int32

	_, err := c.Get(context.Background(), cache.Key("staff_detail", "s1"), 0, func(ctx context.Context) (any, error) {
		return fmt.Sprintf("detalle-%d", detail.Add(1)), nil
	})
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "scheme_roster", 0, func(ctx context.Context) (any, error) {
		return fmt.Sprintf("planes-%d", other.Add(1)), nil
	})
	require.NoError(t, err)

	c.Invalidate("staff_detail")

	assert.Eventually(t, func() bool {
		return detail.Load() == 2
	}, time.Second, 5*time.Millisecond, "las claves parametrizadas del tipo se recomputan")
	assert.Equal(t, int32(1), other.Load(), "los demás tipos no se tocan")

	// El siguiente Get ya sirve un valor recomputado, no el original.
	assert.Eventually(t, func() bool {
		v, err := c.Get(context.Background(), cache.Key("staff_detail", "s1"), 0, func(ctx context.Context) (any, error) {
			return fmt.Sprintf("detalle-%d", detail.Add(1)), nil
		})
		return err == nil && v != "detalle-1"
	}, time.Second, 5*time.Millisecond)
}

// Los tipos cuyo nombre comparte prefijo no se invalidan por accidente.
func TestInvalidate_NoCruzaPrefijosDeTipo(t *testing.T) {
	c := cache.New(nil)
	var calls atomic.Int32

	_, err := c.Get(context.Background(), "staff_roster", 0, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "roster", nil
	})
	require.NoError(t, err)

	c.Invalidate("staff")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), `invalidar "staff" no debe tocar "staff_roster"`)
}

func TestGet_ErrorEnPrimeraPoblacionSePropaga(t *testing.T) {
	c := cache.New(nil)
	boom := errors.New("la consulta falló")
	var calls atomic.Int32

	_, err := c.Get(context.Background(), "k", 0, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len(), "un cómputo fallido no deja entrada")

	// Un fallo no envenena la clave: el siguiente llamador vuelve a intentar.
	v, err := c.Get(context.Background(), "k", 0, func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, int32(2), calls.Load())
}

// Si el recomputo tras invalidar falla, se conserva el valor anterior.
func TestInvalidate_RefrescoFallidoConservaValorAnterior(t *testing.T) {
	c := cache.New(nil)
	var calls atomic.Int32

	compute := func(ctx context.Context) (any, error) {
		if calls.Add(1) > 1 {
			return nil, errors.New("el almacén no responde")
		}
		return "v1", nil
	}

	_, err := c.Get(context.Background(), "k", 0, compute)
	require.NoError(t, err)

	c.Invalidate("k")
	assert.Eventually(t, func() bool {
		return calls.Load() == 2
	}, time.Second, 5*time.Millisecond)

	v, err := c.Get(context.Background(), "k", 0, compute)
	require.NoError(t, err)
	assert.Equal(t, "v1", v, "el valor previo sigue sirviéndose tras un refresco fallido")
}

func TestFetch_DevuelveValorTipado(t *testing.T) {
	c := cache.New(nil)

	type metrics struct{ Total int }

	m, err := cache.Fetch(context.Background(), c, "k", 0, func(ctx context.Context) (metrics, error) {
		return metrics{Total: 42}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, m.Total)
}
