package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.SchemeRepository = (*SchemeRepo)(nil)

// SchemeRepo lectura de planes de ahorro y sus inscripciones.
type SchemeRepo struct {
	q Querier
}

// NewSchemeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSchemeRepository(q Querier) *SchemeRepo {
	return &SchemeRepo{q: q}
}

// List devuelve todos los planes, los más recientes primero.
func (r *SchemeRepo) List(ctx context.Context) ([]entity.Scheme, error) {
	query := `
		SELECT id, name, asset_type, COALESCE(min_daily_amount, 0), COALESCE(max_daily_amount, 0),
		       COALESCE(duration_months, 0), active
		FROM schemes ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	defer rows.Close()
	var list []entity.Scheme
	for rows.Next() {
		var s entity.Scheme
		if err := rows.Scan(&s.ID, &s.Name, &s.AssetType, &s.MinDailyAmount, &s.MaxDailyAmount, &s.DurationMonths, &s.Active); err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountActiveEnrollments devuelve el número de inscripciones activas.
func (r *SchemeRepo) CountActiveEnrollments(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM user_schemes WHERE status = 'active'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return n, nil
}

const userSchemeColumns = `
	id, customer_id, scheme_id, status,
	COALESCE(accumulated_metal_grams, 0), COALESCE(total_amount_paid, 0)`

// ListEnrollments devuelve todas las inscripciones.
func (r *SchemeRepo) ListEnrollments(ctx context.Context) ([]entity.UserScheme, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userSchemeColumns+` FROM user_schemes`)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()
	return scanUserSchemes(rows)
}

// ListEnrollmentsByIDs devuelve las inscripciones indicadas.
func (r *SchemeRepo) ListEnrollmentsByIDs(ctx context.Context, ids []string) ([]entity.UserScheme, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+userSchemeColumns+` FROM user_schemes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("list enrollments by id: %w", err)
	}
	defer rows.Close()
	return scanUserSchemes(rows)
}

func scanUserSchemes(rows pgx.Rows) ([]entity.UserScheme, error) {
	var list []entity.UserScheme
	for rows.Next() {
		var us entity.UserScheme
		if err := rows.Scan(&us.ID, &us.CustomerID, &us.SchemeID, &us.Status, &us.AccumulatedMetalGrams, &us.TotalAmountPaid); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		list = append(list, us)
	}
	return list, rows.Err()
}
