package entity

import "time"

// WhitelistEntry entrada de la lista blanca de teléfonos que controla el
// acceso a la app. Independiente de las entidades financieras.
type WhitelistEntry struct {
	Phone     string
	Active    bool
	AddedBy   string
	CreatedAt time.Time
}

// Profile perfil genérico de profiles (clientes, cobradores y admins).
// PasswordHash solo se puebla para cuentas con login (admins).
type Profile struct {
	ID           string
	Name         string
	Phone        string
	Role         string // "customer" | "staff" | "admin"
	Active       bool
	PasswordHash string
}
