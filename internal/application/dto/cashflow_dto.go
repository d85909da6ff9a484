package dto

import "github.com/shopspring/decimal"

// InflowDayDTO entradas de un día: pagos completados por payment_date,
// desglosados por método.
type InflowDayDTO struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	PaymentCount int             `json:"payment_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CashTotal    decimal.Decimal `json:"cash_total"`
	UpiTotal     decimal.Decimal `json:"upi_total"`
	BankTotal    decimal.Decimal `json:"bank_total"`
}

// OutflowDayDTO salidas de un día: retiros procesados, agrupados por la
// porción de fecha de processed_at (los retiros no tienen fecha pura).
type OutflowDayDTO struct {
	Date            string          `json:"date"`
	WithdrawalCount int             `json:"withdrawal_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// CashFlowDayDTO flujo neto de un día. Una fecha presente en una sola de las
// dos series aparece igualmente, con cero en el lado ausente.
type CashFlowDayDTO struct {
	Date        string          `json:"date"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	NetCashFlow decimal.Decimal `json:"net_cash_flow"` // Inflow - Outflow
}
