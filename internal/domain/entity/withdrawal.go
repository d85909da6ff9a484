package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un retiro. Transiciones: pending → processed | rejected (terminales).
const (
	WithdrawalPending   = "pending"
	WithdrawalProcessed = "processed"
	WithdrawalRejected  = "rejected"
)

// Withdrawal solicitud de retiro de metal/dinero de una inscripción.
// FinalGrams y FinalAmount solo se pueblan al procesarse; ProcessedAt es nil
// mientras el retiro siga pendiente. Los retiros no tienen columna de fecha
// pura: los reportes diarios usan la porción de fecha de ProcessedAt.
type Withdrawal struct {
	ID              string
	UserSchemeID    string
	CustomerID      string
	RequestedGrams  decimal.Decimal
	RequestedAmount decimal.Decimal
	FinalGrams      decimal.Decimal
	FinalAmount     decimal.Decimal
	Status          string
	CreatedAt       time.Time
	ProcessedAt     *time.Time
}
