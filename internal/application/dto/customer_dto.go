package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	NIF     string `json:"nif"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateCustomerRequest campos mutables de cliente (allow-list; nil = sin cambio).
// El NIF es clave natural y no se puede cambiar.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIF       string    `json:"nif"`
	Address   string    `json:"address"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
