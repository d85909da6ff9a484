package repository

import (
	"context"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// StaffRepository acceso de solo lectura a perfiles de cobradores, sus
// metadatos y sus asignaciones de clientes.
type StaffRepository interface {
	// ListProfiles devuelve todos los perfiles con role = 'staff'.
	ListProfiles(ctx context.Context) ([]entity.StaffProfile, error)

	// GetProfile devuelve un perfil de cobrador por id; nil si no existe.
	GetProfile(ctx context.Context, staffID string) (*entity.StaffProfile, error)

	// ListMetadata devuelve los metadatos de todos los cobradores.
	ListMetadata(ctx context.Context) ([]entity.StaffMetadata, error)

	// GetMetadata devuelve los metadatos de un cobrador; nil si no existen.
	GetMetadata(ctx context.Context, staffID string) (*entity.StaffMetadata, error)

	// CountActiveAssignments devuelve, en una sola consulta agrupada, el número
	// de asignaciones activas por staff_id (evita el patrón N+1).
	CountActiveAssignments(ctx context.Context) (map[string]int, error)

	// ListActiveAssignments devuelve las asignaciones activas de un cobrador
	// con nombre y teléfono del cliente resueltos.
	ListActiveAssignments(ctx context.Context, staffID string) ([]entity.StaffAssignment, error)
}
