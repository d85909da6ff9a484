package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo lectura de retiros (usable con pool o tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

const withdrawalColumns = `
	id, user_scheme_id, customer_id,
	COALESCE(requested_grams, 0), COALESCE(requested_amount, 0),
	COALESCE(final_grams, 0), COALESCE(final_amount, 0),
	status, created_at, processed_at`

// ListAll devuelve todos los retiros, los más recientes primero.
func (r *WithdrawalRepo) ListAll(ctx context.Context) ([]entity.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

// ListProcessedBetween devuelve los retiros procesados con processed_at dentro
// del rango [from, to]. Valores cero no filtran.
func (r *WithdrawalRepo) ListProcessedBetween(ctx context.Context, from, to time.Time) ([]entity.Withdrawal, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE status = 'processed'`)

	var args []any
	if !from.IsZero() {
		args = append(args, from)
		fmt.Fprintf(&sb, " AND processed_at >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		fmt.Fprintf(&sb, " AND processed_at <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY processed_at DESC")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list processed withdrawals: %w", err)
	}
	defer rows.Close()
	return scanWithdrawals(rows)
}

func scanWithdrawals(rows pgx.Rows) ([]entity.Withdrawal, error) {
	var list []entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(
			&w.ID, &w.UserSchemeID, &w.CustomerID,
			&w.RequestedGrams, &w.RequestedAmount,
			&w.FinalGrams, &w.FinalAmount,
			&w.Status, &w.CreatedAt, &w.ProcessedAt,
		); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
