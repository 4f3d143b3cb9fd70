package entity

import "time"

// Provider representa un proveedor de muebles, identificado por su CIF.
type Provider struct {
	ID        string
	Name      string
	CIF       string // CIF español: letra mayúscula + 8 dígitos (clave natural)
	Address   string
	Email     string // opcional; único cuando está presente
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
