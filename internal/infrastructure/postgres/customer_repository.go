package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo lectura de clientes (perfiles con role = 'customer').
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// CountActive devuelve el número de clientes activos.
func (r *CustomerRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM profiles WHERE role = 'customer' AND active = true`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// ListByIDs devuelve los clientes indicados; los ids ausentes no aparecen.
func (r *CustomerRepo) ListByIDs(ctx context.Context, ids []string) ([]entity.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), active
		FROM profiles WHERE role = 'customer' AND id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Active); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
