package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// ChangeListener escucha notificaciones de cambio de la base de datos por
// LISTEN/NOTIFY. Los triggers de la DB emiten NOTIFY <canal>, '<colección>'
// tras cada INSERT/UPDATE/DELETE; el payload es el nombre de la colección
// modificada (payments, withdrawals, etc.).
//
// Usa una conexión dedicada fuera del pool: una conexión en LISTEN queda
// bloqueada en WaitForNotification y no puede servir consultas.
type ChangeListener struct {
	dsn     string
	channel string
	notify  func(collection string)
	log     *logger.Logger
}

// NewChangeListener construye el listener. notify se invoca desde la
// goroutine del listener por cada notificación recibida.
func NewChangeListener(dsn, channel string, notify func(collection string), log *logger.Logger) *ChangeListener {
	return &ChangeListener{dsn: dsn, channel: channel, notify: notify, log: log}
}

// Run escucha hasta que el contexto se cancele. Ante cualquier error de
// conexión reintenta con backoff exponencial (1s a 30s); las notificaciones
// emitidas durante la desconexión se pierden, por eso al reconectar se emite
// un aviso "*" para que el invalidador marque todo como obsoleto.
func (l *ChangeListener) Run(ctx context.Context) error {
	backoff := time.Second
	const maxBackoff = 30 * time.Second

	first := true
	for {
		err := l.listen(ctx, !first)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn().Err(err).Dur("retry_in", backoff).Msg("listener desconectado, reintentando")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
		first = false
	}
}

func (l *ChangeListener) listen(ctx context.Context, reconnected bool) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("conectar listener: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s: %w", l.channel, err)
	}
	l.log.Info().Str("channel", l.channel).Msg("escuchando cambios de la DB")

	if reconnected {
		// Pudimos perder notificaciones mientras estábamos caídos.
		l.notify("*")
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			return fmt.Errorf("wait notification: %w", err)
		}
		if n.Payload == "" {
			continue
		}
		l.notify(n.Payload)
	}
}
