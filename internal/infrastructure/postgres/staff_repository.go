package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo lectura de perfiles de cobradores, metadatos y asignaciones.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

// ListProfiles devuelve todos los perfiles con role = 'staff'.
func (r *StaffRepo) ListProfiles(ctx context.Context) ([]entity.StaffProfile, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''), active
		FROM profiles WHERE role = 'staff' ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff profiles: %w", err)
	}
	defer rows.Close()
	var list []entity.StaffProfile
	for rows.Next() {
		var p entity.StaffProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Active); err != nil {
			return nil, fmt.Errorf("scan staff profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetProfile devuelve un perfil de cobrador por id; nil si no existe.
func (r *StaffRepo) GetProfile(ctx context.Context, staffID string) (*entity.StaffProfile, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''), active
		FROM profiles WHERE id = $1 AND role = 'staff'`
	var p entity.StaffProfile
	err := r.q.QueryRow(ctx, query, staffID).Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff profile: %w", err)
	}
	return &p, nil
}

// ListMetadata devuelve los metadatos de todos los cobradores.
func (r *StaffRepo) ListMetadata(ctx context.Context) ([]entity.StaffMetadata, error) {
	query := `
		SELECT staff_id, COALESCE(staff_code, ''), COALESCE(staff_type, 'collection'),
		       COALESCE(daily_target_amount, 0), is_active
		FROM staff_details`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list staff metadata: %w", err)
	}
	defer rows.Close()
	var list []entity.StaffMetadata
	for rows.Next() {
		var m entity.StaffMetadata
		if err := rows.Scan(&m.StaffID, &m.StaffCode, &m.StaffType, &m.DailyTargetAmount, &m.IsActive); err != nil {
			return nil, fmt.Errorf("scan staff metadata: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetMetadata devuelve los metadatos de un cobrador; nil si no existen.
func (r *StaffRepo) GetMetadata(ctx context.Context, staffID string) (*entity.StaffMetadata, error) {
	query := `
		SELECT staff_id, COALESCE(staff_code, ''), COALESCE(staff_type, 'collection'),
		       COALESCE(daily_target_amount, 0), is_active
		FROM staff_details WHERE staff_id = $1`
	var m entity.StaffMetadata
	err := r.q.QueryRow(ctx, query, staffID).Scan(&m.StaffID, &m.StaffCode, &m.StaffType, &m.DailyTargetAmount, &m.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff metadata: %w", err)
	}
	return &m, nil
}

// CountActiveAssignments devuelve el número de asignaciones activas por
// staff_id, en una sola consulta agrupada.
func (r *StaffRepo) CountActiveAssignments(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT staff_id, COUNT(*)
		FROM staff_assignments WHERE is_active = true
		GROUP BY staff_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var staffID string
		var n int
		if err := rows.Scan(&staffID, &n); err != nil {
			return nil, fmt.Errorf("scan assignment count: %w", err)
		}
		counts[staffID] = n
	}
	return counts, rows.Err()
}

// ListActiveAssignments devuelve las asignaciones activas de un cobrador con
// nombre y teléfono del cliente resueltos (join a profiles).
func (r *StaffRepo) ListActiveAssignments(ctx context.Context, staffID string) ([]entity.StaffAssignment, error) {
	query := `
		SELECT a.staff_id, a.customer_id, COALESCE(p.name, 'N/A'), COALESCE(p.phone, 'N/A'),
		       a.is_active, a.assigned_date
		FROM staff_assignments a
		LEFT JOIN profiles p ON p.id = a.customer_id
		WHERE a.staff_id = $1 AND a.is_active = true
		ORDER BY a.assigned_date DESC`
	rows, err := r.q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []entity.StaffAssignment
	for rows.Next() {
		var a entity.StaffAssignment
		if err := rows.Scan(&a.StaffID, &a.CustomerID, &a.CustomerName, &a.Phone, &a.IsActive, &a.AssignedDate); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
