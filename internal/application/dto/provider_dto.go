package dto

import "time"

// CreateProviderRequest alta de proveedor.
type CreateProviderRequest struct {
	Name    string `json:"name"`
	CIF     string `json:"cif"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateProviderRequest campos mutables de proveedor (allow-list; nil = sin cambio).
// El CIF es clave natural y no se puede cambiar.
type UpdateProviderRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// ProviderResponse representación pública de un proveedor.
type ProviderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CIF       string    `json:"cif"`
	Address   string    `json:"address"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
