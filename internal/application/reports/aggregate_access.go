package reports

import (
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// AggregateAccessControl une la lista blanca con los perfiles por teléfono.
// Un teléfono sin perfil aún no completó el registro: nombre 'N/A' y rol
// 'customer' por defecto.
func AggregateAccessControl(entries []entity.WhitelistEntry, profiles []entity.Profile) []dto.AccessEntryDTO {
	byPhone := make(map[string]entity.Profile, len(profiles))
	for _, p := range profiles {
		byPhone[p.Phone] = p
	}

	out := make([]dto.AccessEntryDTO, 0, len(entries))
	for _, e := range entries {
		row := dto.AccessEntryDTO{
			Phone:     e.Phone,
			Name:      "N/A",
			Role:      "customer",
			IsActive:  e.Active,
			AddedBy:   e.AddedBy,
			CreatedAt: e.CreatedAt,
		}
		if p, ok := byPhone[e.Phone]; ok {
			if p.Name != "" {
				row.Name = p.Name
			}
			if p.Role != "" {
				row.Role = p.Role
			}
		}
		out = append(out, row)
	}
	return out
}
