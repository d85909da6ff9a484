package entity

import "github.com/shopspring/decimal"

// Tipos de activo de un plan de ahorro.
const (
	AssetGold   = "gold"
	AssetSilver = "silver"
)

// Estados de una inscripción (UserScheme).
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
)

// Scheme plan de ahorro en oro o plata.
type Scheme struct {
	ID             string
	Name           string
	AssetType      string // gold | silver
	MinDailyAmount decimal.Decimal
	MaxDailyAmount decimal.Decimal
	DurationMonths int
	Active         bool
}

// UserScheme inscripción de un cliente en un plan. Un cliente puede tener
// varias inscripciones simultáneas. AccumulatedMetalGrams es monótonamente
// no decreciente mientras la inscripción está activa.
type UserScheme struct {
	ID                    string
	CustomerID            string
	SchemeID              string
	Status                string // active | completed
	AccumulatedMetalGrams decimal.Decimal
	TotalAmountPaid       decimal.Decimal
}
