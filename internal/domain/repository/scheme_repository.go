package repository

import (
	"context"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// SchemeRepository acceso de solo lectura a planes de ahorro y sus
// inscripciones (user_schemes).
type SchemeRepository interface {
	// List devuelve todos los planes, los más recientes primero.
	List(ctx context.Context) ([]entity.Scheme, error)

	// CountActiveEnrollments devuelve el número de inscripciones activas.
	CountActiveEnrollments(ctx context.Context) (int, error)

	// ListEnrollments devuelve todas las inscripciones; el agregador las
	// agrupa localmente por plan (una consulta, no una por plan).
	ListEnrollments(ctx context.Context) ([]entity.UserScheme, error)

	// ListEnrollmentsByIDs devuelve las inscripciones indicadas.
	ListEnrollmentsByIDs(ctx context.Context, ids []string) ([]entity.UserScheme, error)
}
