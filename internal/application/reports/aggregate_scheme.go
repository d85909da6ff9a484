package reports

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// schemeTotals acumuladores por plan, alimentados vía la indirección
// inscripción → plan: un pago pertenece al plan de su user_scheme.
type schemeTotals struct {
	active    int
	completed int
	total     int
	collected decimal.Decimal
	grams     decimal.Decimal
}

func groupBySchemes(enrollments []entity.UserScheme, payments []entity.Payment) map[string]*schemeTotals {
	totals := make(map[string]*schemeTotals)
	get := func(schemeID string) *schemeTotals {
		t, ok := totals[schemeID]
		if !ok {
			t = &schemeTotals{}
			totals[schemeID] = t
		}
		return t
	}

	enrollmentScheme := make(map[string]string, len(enrollments))
	for _, us := range enrollments {
		enrollmentScheme[us.ID] = us.SchemeID
		t := get(us.SchemeID)
		t.total++
		switch us.Status {
		case entity.EnrollmentActive:
			t.active++
		case entity.EnrollmentCompleted:
			t.completed++
		}
		t.grams = t.grams.Add(us.AccumulatedMetalGrams)
	}
	for _, p := range payments {
		schemeID, ok := enrollmentScheme[p.UserSchemeID]
		if !ok {
			continue // pago de una inscripción desconocida, no atribuible
		}
		t := get(schemeID)
		t.collected = t.collected.Add(p.Amount)
	}
	return totals
}

// AggregateSchemeRoster arma el listado de planes con conteos de inscripciones
// y recaudo total de cada plan.
func AggregateSchemeRoster(
	schemes []entity.Scheme,
	enrollments []entity.UserScheme,
	payments []entity.Payment,
) []dto.SchemeRosterItemDTO {
	totals := groupBySchemes(enrollments, payments)

	items := make([]dto.SchemeRosterItemDTO, 0, len(schemes))
	for _, s := range schemes {
		item := dto.SchemeRosterItemDTO{
			ID:             s.ID,
			Name:           s.Name,
			AssetType:      s.AssetType,
			MinAmount:      s.MinDailyAmount,
			MaxAmount:      s.MaxDailyAmount,
			DurationMonths: s.DurationMonths,
			IsActive:       s.Active,
			TotalCollected: decimal.Zero,
		}
		if t, ok := totals[s.ID]; ok {
			item.ActiveEnrollments = t.active
			item.CompletedEnrollments = t.completed
			item.TotalCollected = t.collected
		}
		items = append(items, item)
	}
	return items
}

// AggregateSchemePerformance arma el reporte de desempeño por plan: conteos
// por estado, recaudo, gramos acumulados y promedio por inscripción (0 si el
// plan no tiene inscripciones).
func AggregateSchemePerformance(
	schemes []entity.Scheme,
	enrollments []entity.UserScheme,
	payments []entity.Payment,
) []dto.SchemePerformanceDTO {
	totals := groupBySchemes(enrollments, payments)

	rows := make([]dto.SchemePerformanceDTO, 0, len(schemes))
	for _, s := range schemes {
		row := dto.SchemePerformanceDTO{
			SchemeName:       s.Name,
			AssetType:        s.AssetType,
			TotalCollected:   decimal.Zero,
			TotalMetalGrams:  decimal.Zero,
			AvgPerEnrollment: decimal.Zero,
		}
		if t, ok := totals[s.ID]; ok {
			row.TotalEnrollments = t.total
			row.ActiveEnrollments = t.active
			row.CompletedEnrollments = t.completed
			row.TotalCollected = t.collected
			row.TotalMetalGrams = t.grams
			if t.total > 0 {
				row.AvgPerEnrollment = t.collected.Div(decimal.NewFromInt(int64(t.total))).Round(2)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
