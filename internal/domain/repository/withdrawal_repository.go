package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// WithdrawalRepository acceso de solo lectura a la colección de retiros.
type WithdrawalRepository interface {
	// ListAll devuelve todos los retiros ordenados por created_at descendente.
	ListAll(ctx context.Context) ([]entity.Withdrawal, error)

	// ListProcessedBetween devuelve los retiros procesados con processed_at
	// dentro del rango [from, to]. Valores cero no filtran.
	ListProcessedBetween(ctx context.Context, from, to time.Time) ([]entity.Withdrawal, error)
}
