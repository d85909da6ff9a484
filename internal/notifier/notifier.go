// Package notifier implementa el registro publish/subscribe de cambios de
// colección: el almacén externo anuncia "la colección X cambió" y el notifier
// entrega el evento a los suscriptores de esa colección. El registro es
// sincrónico; la entrega es asíncrona (paso de mensajes, un goroutine de
// despacho) para no bloquear nunca al emisor del cambio.
package notifier

import (
	"sync"

	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// Handler recibe el nombre de la colección que cambió. Los eventos no llevan
// más carga útil: solo garantizan "esta colección cambió".
type Handler func(collection string)

// Notifier registro de suscripciones por colección.
type Notifier struct {
	mu   sync.RWMutex
	subs map[string][]Handler

	events chan string
	done   chan struct{}
	log    *logger.Logger
}

// New construye el notifier y arranca su goroutine de despacho. buffer acota
// los eventos pendientes; al llenarse, los nuevos eventos se descartan (la
// entrega es best-effort: una invalidación perdida la corrige el intervalo de
// refresco del reporte).
func New(buffer int, log *logger.Logger) *Notifier {
	n := &Notifier{
		subs:   make(map[string][]Handler),
		events: make(chan string, buffer),
		done:   make(chan struct{}),
		log:    log,
	}
	go n.dispatch()
	return n
}

// Subscribe registra un handler para la colección. Sincrónico; seguro de
// llamar desde varios goroutines, aunque el uso normal es en el arranque.
func (n *Notifier) Subscribe(collection string, h Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[collection] = append(n.subs[collection], h)
}

// Notify anuncia que la colección cambió. Nunca bloquea: si el buffer está
// lleno, el evento se descarta y se registra.
func (n *Notifier) Notify(collection string) {
	select {
	case n.events <- collection:
	default:
		if n.log != nil {
			n.log.Warn().Str("collection", collection).Msg("buffer de eventos lleno; evento de cambio descartado")
		}
	}
}

// Close detiene el despacho. Los eventos encolados pendientes se descartan.
func (n *Notifier) Close() {
	close(n.done)
}

func (n *Notifier) dispatch() {
	for {
		select {
		case collection := <-n.events:
			n.mu.RLock()
			handlers := n.subs[collection]
			n.mu.RUnlock()
			for _, h := range handlers {
				h(collection)
			}
		case <-n.done:
			return
		}
	}
}
