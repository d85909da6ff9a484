package reports

import (
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// AggregateWithdrawalRoster arma el listado de retiros con cliente y plan
// resueltos. Los registros con perfil o plan ausente no fallan la agregación:
// se sustituyen los valores por defecto documentados en el DTO.
func AggregateWithdrawalRoster(
	withdrawals []entity.Withdrawal, // ya ordenados por created_at descendente
	customers []entity.Customer,
	enrollments []entity.UserScheme,
	schemes []entity.Scheme,
) []dto.WithdrawalRosterItemDTO {
	customerIdx := make(map[string]entity.Customer, len(customers))
	for _, c := range customers {
		customerIdx[c.ID] = c
	}
	schemeIdx := make(map[string]entity.Scheme, len(schemes))
	for _, s := range schemes {
		schemeIdx[s.ID] = s
	}
	enrollmentScheme := make(map[string]string, len(enrollments))
	for _, us := range enrollments {
		enrollmentScheme[us.ID] = us.SchemeID
	}

	items := make([]dto.WithdrawalRosterItemDTO, 0, len(withdrawals))
	for _, w := range withdrawals {
		item := dto.WithdrawalRosterItemDTO{
			ID:              w.ID,
			CustomerName:    "N/A",
			CustomerPhone:   "N/A",
			SchemeName:      "N/A",
			AssetType:       entity.AssetGold,
			Status:          w.Status,
			CreatedAt:       w.CreatedAt,
			RequestedAmount: w.RequestedAmount,
			FinalAmount:     w.FinalAmount,
		}
		if c, ok := customerIdx[w.CustomerID]; ok {
			item.CustomerName = c.Name
			item.CustomerPhone = c.Phone
		}
		if s, ok := schemeIdx[enrollmentScheme[w.UserSchemeID]]; ok {
			item.SchemeName = s.Name
			item.AssetType = s.AssetType
		}
		// final_grams manda una vez procesado; antes de eso solo existe lo
		// solicitado.
		if w.FinalGrams.IsPositive() {
			item.MetalGrams = w.FinalGrams
		} else {
			item.MetalGrams = w.RequestedGrams
		}
		items = append(items, item)
	}
	return items
}
