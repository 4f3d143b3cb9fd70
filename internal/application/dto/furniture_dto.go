package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFurnitureRequest alta de mueble en el catálogo.
type CreateFurnitureRequest struct {
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Dimensions  string          `json:"dimensions"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// UpdateFurnitureRequest campos mutables de mueble (allow-list; nil = sin cambio).
// Stock queda fuera a propósito: solo lo muta el flujo de transacciones.
type UpdateFurnitureRequest struct {
	Type        *string          `json:"type"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Color       *string          `json:"color"`
	Dimensions  *string          `json:"dimensions"`
	Price       *decimal.Decimal `json:"price"`
}

// FurnitureResponse representación pública de un mueble.
type FurnitureResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Dimensions  string          `json:"dimensions"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
