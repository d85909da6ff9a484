package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.WhitelistRepository = (*WhitelistRepo)(nil)

// WhitelistRepo lectura de la lista blanca de teléfonos y perfiles asociados.
type WhitelistRepo struct {
	q Querier
}

// NewWhitelistRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWhitelistRepository(q Querier) *WhitelistRepo {
	return &WhitelistRepo{q: q}
}

// List devuelve las entradas de la lista blanca, las más recientes primero.
func (r *WhitelistRepo) List(ctx context.Context) ([]entity.WhitelistEntry, error) {
	query := `
		SELECT phone, active, COALESCE(added_by, ''), created_at
		FROM whitelist ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list whitelist: %w", err)
	}
	defer rows.Close()
	var list []entity.WhitelistEntry
	for rows.Next() {
		var e entity.WhitelistEntry
		if err := rows.Scan(&e.Phone, &e.Active, &e.AddedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan whitelist entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListProfilesByPhones devuelve los perfiles cuyos teléfonos estén en la lista.
func (r *WhitelistRepo) ListProfilesByPhones(ctx context.Context, phones []string) ([]entity.Profile, error) {
	if len(phones) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), role, active
		FROM profiles WHERE phone = ANY($1)`
	rows, err := r.q.Query(ctx, query, phones)
	if err != nil {
		return nil, fmt.Errorf("list profiles by phone: %w", err)
	}
	defer rows.Close()
	var list []entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Role, &p.Active); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetAdminByPhone devuelve el perfil admin con ese teléfono; nil si no existe.
func (r *WhitelistRepo) GetAdminByPhone(ctx context.Context, phone string) (*entity.Profile, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), role, active, COALESCE(password_hash, '')
		FROM profiles WHERE phone = $1 AND role = 'admin' AND active = true`
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, phone).Scan(&p.ID, &p.Name, &p.Phone, &p.Role, &p.Active, &p.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin by phone: %w", err)
	}
	return &p, nil
}
