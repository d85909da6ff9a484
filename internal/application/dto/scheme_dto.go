package dto

import "github.com/shopspring/decimal"

// SchemeRosterItemDTO fila del listado de planes con estadísticas.
type SchemeRosterItemDTO struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	AssetType            string          `json:"asset_type"`
	MinAmount            decimal.Decimal `json:"min_amount"`
	MaxAmount            decimal.Decimal `json:"max_amount"`
	DurationMonths       int             `json:"duration_months"`
	IsActive             bool            `json:"is_active"`
	ActiveEnrollments    int             `json:"active_enrollments"`
	CompletedEnrollments int             `json:"completed_enrollments"`
	TotalCollected       decimal.Decimal `json:"total_collected"` // pagos completados de sus inscripciones
}

// SchemePerformanceDTO fila del reporte de desempeño por plan.
type SchemePerformanceDTO struct {
	SchemeName           string          `json:"scheme_name"`
	AssetType            string          `json:"asset_type"`
	TotalEnrollments     int             `json:"total_enrollments"`
	ActiveEnrollments    int             `json:"active_enrollments"`
	CompletedEnrollments int             `json:"completed_enrollments"`
	TotalCollected       decimal.Decimal `json:"total_collected"`
	TotalMetalGrams      decimal.Decimal `json:"total_metal_grams"`
	AvgPerEnrollment     decimal.Decimal `json:"avg_per_enrollment"` // 0 si no hay inscripciones
}
