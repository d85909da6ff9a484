package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffProfile perfil de un cobrador (fila de profiles con role = 'staff').
type StaffProfile struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Active bool
}

// StaffMetadata metadatos operativos del cobrador (1:1 con StaffProfile).
type StaffMetadata struct {
	StaffID           string
	StaffCode         string
	StaffType         string // "collection" por defecto
	DailyTargetAmount decimal.Decimal // meta diaria de recaudo; >= 0
	IsActive          bool
}

// StaffAssignment asignación cobrador ↔ cliente (N:M, filtrada por is_active).
// Name y Phone vienen resueltos del perfil del cliente.
type StaffAssignment struct {
	StaffID      string
	CustomerID   string
	CustomerName string
	Phone        string
	IsActive     bool
	AssignedDate time.Time
}
