package dto

import "github.com/shopspring/decimal"

// StaffRosterItemDTO fila del listado de cobradores con sus estadísticas.
type StaffRosterItemDTO struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Active            bool            `json:"active"`
	StaffCode         string          `json:"staff_code"`
	StaffType         string          `json:"staff_type"`
	DailyTarget       decimal.Decimal `json:"daily_target"`
	IsActive          bool            `json:"is_active"`
	AssignedCustomers int             `json:"assigned_customers"` // asignaciones activas
	TodayCollections  decimal.Decimal `json:"today_collections"`
}

// AssignedCustomerDTO cliente asignado a un cobrador.
type AssignedCustomerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AssignedDate string `json:"assigned_date"` // YYYY-MM-DD
}

// RecentPaymentDTO pago reciente en la vista de detalle de un cobrador.
type RecentPaymentDTO struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	SchemeName   string          `json:"scheme_name"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"` // YYYY-MM-DD
}

// StaffDetailDTO vista profunda de un cobrador.
type StaffDetailDTO struct {
	StaffRosterItemDTO
	TotalCollections      decimal.Decimal       `json:"total_collections"`
	CustomersVisitedToday int                   `json:"customers_visited_today"` // customer_id distintos entre los pagos de hoy
	AssignedCustomersList []AssignedCustomerDTO `json:"assigned_customers_list"`
	RecentPayments        []RecentPaymentDTO    `json:"recent_payments"` // los 10 más recientes
}

// StaffPerformanceDTO fila del reporte de desempeño por cobrador en un rango.
type StaffPerformanceDTO struct {
	StaffName         string          `json:"staff_name"`
	StaffCode         string          `json:"staff_code"`
	DailyTarget       decimal.Decimal `json:"daily_target"`
	TotalPayments     int             `json:"total_payments"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	CustomersVisited  int             `json:"customers_visited"`
	AssignedCustomers int             `json:"assigned_customers"`
	TargetAchievement int             `json:"target_achievement"` // %, redondeado; 0 si la meta es 0
}
