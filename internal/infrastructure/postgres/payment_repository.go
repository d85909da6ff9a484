package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo lectura de pagos (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// ListCompleted devuelve los pagos completados que satisfacen el filtro.
// staff_id NULL se devuelve como cadena vacía.
func (r *PaymentRepo) ListCompleted(ctx context.Context, f repository.PaymentFilter) ([]entity.Payment, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_scheme_id, customer_id, COALESCE(staff_id, ''), amount, payment_method, payment_date, status
		FROM payments WHERE status = 'completed'`)

	var args []any
	if !f.From.IsZero() {
		args = append(args, f.From)
		fmt.Fprintf(&sb, " AND payment_date >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		fmt.Fprintf(&sb, " AND payment_date <= $%d", len(args))
	}
	if f.StaffID != "" {
		args = append(args, f.StaffID)
		fmt.Fprintf(&sb, " AND staff_id = $%d", len(args))
	}
	if len(f.EnrollmentIDs) > 0 {
		args = append(args, f.EnrollmentIDs)
		fmt.Fprintf(&sb, " AND user_scheme_id = ANY($%d)", len(args))
	}
	if f.OrderDesc {
		sb.WriteString(" ORDER BY payment_date DESC, id DESC")
	} else {
		sb.WriteString(" ORDER BY payment_date, id")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.UserSchemeID, &p.CustomerID, &p.StaffID, &p.Amount, &p.PaymentMethod, &p.PaymentDate, &p.Status); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
