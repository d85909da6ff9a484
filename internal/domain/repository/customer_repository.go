package repository

import (
	"context"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// CustomerRepository acceso de solo lectura a clientes. El join con profiles
// (nombre, teléfono) lo resuelve la implementación.
type CustomerRepository interface {
	// CountActive devuelve el número de clientes con active = true.
	CountActive(ctx context.Context) (int, error)

	// ListByIDs devuelve los clientes indicados. Los ids ausentes simplemente
	// no aparecen en el resultado; el agregador aplica su valor por defecto.
	ListByIDs(ctx context.Context, ids []string) ([]entity.Customer, error)
}
