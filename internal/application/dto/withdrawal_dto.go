package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalRosterItemDTO fila del listado de retiros con cliente y plan
// resueltos. MetalGrams es final_grams cuando ya está poblado (retiro
// procesado) y requested_grams en caso contrario.
type WithdrawalRosterItemDTO struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`  // 'N/A' si el perfil no existe
	CustomerPhone   string          `json:"customer_phone"` // 'N/A' si el perfil no existe
	SchemeName      string          `json:"scheme_name"`    // 'N/A' si el plan no existe
	AssetType       string          `json:"asset_type"`     // 'gold' por defecto
	MetalGrams      decimal.Decimal `json:"metal_grams"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
}
