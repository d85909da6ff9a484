package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	MethodCash         = "cash"
	MethodUPI          = "upi"
	MethodBankTransfer = "bank_transfer"
)

// Estados de un pago. Las transiciones válidas son pending → completed y
// pending → failed (terminales); solo los completed cuentan para el recaudo.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment pago de un cliente hacia una inscripción. StaffID puede estar vacío
// (pago sin cobrador, p. ej. UPI directo). PaymentDate es fecha sin hora.
type Payment struct {
	ID            string
	UserSchemeID  string
	CustomerID    string
	StaffID       string // vacío si no hubo cobrador
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentDate   time.Time // solo fecha (DATE en la DB)
	Status        string
}
