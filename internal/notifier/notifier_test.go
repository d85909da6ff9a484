package notifier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oroplan-admin/internal/notifier"
)

func recibir(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case got := <-ch:
		return got
	case <-time.After(time.Second):
		t.Fatal("el evento nunca llegó al suscriptor")
		return ""
	}
}

func TestNotify_EntregaAlSuscriptorDeLaColeccion(t *testing.T) {
	n := notifier.New(8, nil)
	defer n.Close()

	got := make(chan string, 1)
	n.Subscribe("payments", func(collection string) { got <- collection })

	n.Notify("payments")
	assert.Equal(t, "payments", recibir(t, got))
}

func TestNotify_TodosLosSuscriptoresReciben(t *testing.T) {
	n := notifier.New(8, nil)
	defer n.Close()

	first := make(chan string, 1)
	second := make(chan string, 1)
	n.Subscribe("withdrawals", func(collection string) { first <- collection })
	n.Subscribe("withdrawals", func(collection string) { second <- collection })

	n.Notify("withdrawals")
	assert.Equal(t, "withdrawals", recibir(t, first))
	assert.Equal(t, "withdrawals", recibir(t, second))
}

func TestNotify_SoloLaColeccionAnunciada(t *testing.T) {
	n := notifier.New(8, nil)
	defer n.Close()

	payments := make(chan string, 1)
	schemes := make(chan string, 1)
	n.Subscribe("payments", func(collection string) { payments <- collection })
	n.Subscribe("schemes", func(collection string) { schemes <- collection })

	n.Notify("payments")
	assert.Equal(t, "payments", recibir(t, payments))

	select {
	case got := <-schemes:
		t.Fatalf("el suscriptor de schemes recibió %q sin que su colección cambiara", got)
	case <-time.After(50 * time.Millisecond):
	}
}

// El emisor nunca se bloquea, ni siquiera sin suscriptores o con el buffer lleno.
func TestNotify_NuncaBloqueaAlEmisor(t *testing.T) {
	n := notifier.New(1, nil)
	defer n.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			n.Notify("market_rates")
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify bloqueó al emisor")
	}
}

func TestClose_DetieneElDespacho(t *testing.T) {
	n := notifier.New(8, nil)

	got := make(chan string, 1)
	n.Subscribe("profiles", func(collection string) { got <- collection })

	n.Close()
	// Dar tiempo a que el goroutine de despacho termine antes de emitir.
	time.Sleep(20 * time.Millisecond)
	n.Notify("profiles")

	select {
	case collection := <-got:
		t.Fatalf("se entregó %q después de Close", collection)
	case <-time.After(50 * time.Millisecond):
	}

	require.NotPanics(t, func() { n.Notify("profiles") })
}
