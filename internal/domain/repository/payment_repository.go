package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// PaymentFilter filtros de lectura sobre pagos completados. Los campos en cero
// no filtran: From/To vacíos significan "sin límite", StaffID vacío significa
// "todos los cobradores". Limit > 0 junto con OrderDesc permite "los N más
// recientes".
type PaymentFilter struct {
	From          time.Time // payment_date >= From (solo fecha)
	To            time.Time // payment_date <= To (solo fecha)
	StaffID       string
	EnrollmentIDs []string // user_scheme_id IN (...)
	Limit         int
	OrderDesc     bool // ordenar por payment_date descendente
}

// PaymentRepository acceso de solo lectura a la colección de pagos.
// Solo expone pagos con status = 'completed': los pending/failed nunca
// cuentan para el recaudo.
type PaymentRepository interface {
	// ListCompleted devuelve los pagos completados que satisfacen el filtro.
	ListCompleted(ctx context.Context, f PaymentFilter) ([]entity.Payment, error)
}
