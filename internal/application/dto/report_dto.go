package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStaffGroupDTO desglose por cobrador dentro del reporte diario.
type DailyStaffGroupDTO struct {
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"` // 'Unknown' si el perfil no existe
	StaffCode        string          `json:"staff_code"` // 'N/A' si no hay metadatos
	PaymentCount     int             `json:"payment_count"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	CustomersVisited int             `json:"customers_visited"` // customer_id distintos
}

// DailyPaymentDTO pago individual listado en el reporte diario.
type DailyPaymentDTO struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	StaffName    string          `json:"staff_name"`
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
}

// DailyReportDTO desglose completo del recaudo de una fecha.
type DailyReportDTO struct {
	Date            string               `json:"date"` // YYYY-MM-DD
	TotalPayments   int                  `json:"total_payments"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	UniqueCustomers int                  `json:"unique_customers"`
	ActiveStaff     int                  `json:"active_staff"` // staff_id distintos con pagos
	AveragePayment  decimal.Decimal      `json:"average_payment"`
	ByMethod        []MethodGroupDTO     `json:"by_method"`
	ByStaff         []DailyStaffGroupDTO `json:"by_staff"`
	Payments        []DailyPaymentDTO    `json:"payments"`
}

// CustomerPaymentRowDTO fila del reporte de pagos por (cliente, inscripción).
// DueAmount está reservado: el cálculo de saldo pendiente por plan no está
// implementado y el campo siempre es 0.
type CustomerPaymentRowDTO struct {
	CustomerName    string          `json:"customer_name"` // 'Unknown' si el perfil no existe
	Phone           string          `json:"phone"`         // 'N/A' si el perfil no existe
	SchemeName      string          `json:"scheme_name"`   // 'Unknown' si el plan no existe
	TotalPayments   int             `json:"total_payments"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	MetalGrams      decimal.Decimal `json:"metal_grams"` // acumulado vigente de la inscripción
	DueAmount       decimal.Decimal `json:"due_amount"`  // reservado, siempre 0
	LastPaymentDate string          `json:"last_payment_date"`
}

// AccessEntryDTO entrada de la lista blanca enriquecida con su perfil.
type AccessEntryDTO struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"` // 'N/A' si no hay perfil
	Role      string    `json:"role"` // 'customer' si no hay perfil
	IsActive  bool      `json:"is_active"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}
