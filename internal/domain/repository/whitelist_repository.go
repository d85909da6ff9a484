package repository

import (
	"context"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// WhitelistRepository acceso de solo lectura a la lista blanca de teléfonos
// y a los perfiles asociados (control de acceso).
type WhitelistRepository interface {
	// List devuelve las entradas de la lista blanca, las más recientes primero.
	List(ctx context.Context) ([]entity.WhitelistEntry, error)

	// ListProfilesByPhones devuelve los perfiles cuyos teléfonos estén en la
	// lista dada (una sola consulta; el agregador indexa por teléfono).
	ListProfilesByPhones(ctx context.Context, phones []string) ([]entity.Profile, error)

	// GetAdminByPhone devuelve el perfil admin con ese teléfono; nil si no
	// existe o no es admin.
	GetAdminByPhone(ctx context.Context, phone string) (*entity.Profile, error)
}
