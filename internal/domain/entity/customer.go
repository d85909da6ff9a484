package entity

// Customer cliente del plan de ahorro, con los datos de su perfil ya resueltos
// (join customers → profiles en el Record Store).
type Customer struct {
	ID     string
	Name   string
	Phone  string
	Active bool // elegible para recaudo
}
