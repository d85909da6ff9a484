package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO KPIs principales del panel de administración.
// "Hoy" se evalúa contra la fecha de referencia pasada al caso de uso, no
// contra el reloj del servidor.
type DashboardMetricsDTO struct {
	TotalCustomers    int             `json:"total_customers"`    // clientes activos
	ActiveEnrollments int             `json:"active_enrollments"` // inscripciones con status = active
	TodayCollections  decimal.Decimal `json:"today_collections"`  // pagos completados de hoy
	TodayWithdrawals  decimal.Decimal `json:"today_withdrawals"`  // retiros procesados hoy (final_amount)
	TotalCollections  decimal.Decimal `json:"total_collections"`  // pagos completados históricos
	TotalWithdrawals  decimal.Decimal `json:"total_withdrawals"`  // retiros procesados históricos
}

// TrendPointDTO un día de la serie de recaudo. La serie es dispersa: los días
// sin pagos no aparecen.
type TrendPointDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// MethodGroupDTO agrupación de pagos completados por método.
type MethodGroupDTO struct {
	Method string          `json:"method"` // etiqueta legible: Cash, UPI, Bank Transfer
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}
