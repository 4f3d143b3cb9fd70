package entity

import "time"

// Customer representa un cliente de la tienda, identificado por su NIF.
type Customer struct {
	ID        string
	Name      string
	NIF       string // NIF español: 8 dígitos + letra mayúscula (clave natural)
	Address   string
	Email     string // opcional; único cuando está presente
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
