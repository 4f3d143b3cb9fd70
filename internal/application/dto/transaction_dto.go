package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntityRef referencia etiquetada a la entidad de una transacción:
// {type: "Customer", nif} o {type: "Provider", cif}.
type EntityRef struct {
	Type string `json:"type"`
	NIF  string `json:"nif,omitempty"`
	CIF  string `json:"cif,omitempty"`
}

// FurnitureBody atributos para auto-crear un mueble desconocido en una
// transacción de entrada (Purchase Order, Refund from client).
type FurnitureBody struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Dimensions  string          `json:"dimensions"`
	Price       decimal.Decimal `json:"price"`
}

// TransactionLineRequest una línea {mueble, cantidad} de la petición.
type TransactionLineRequest struct {
	Name     string         `json:"name"`
	Quantity int64          `json:"quantity"`
	Body     *FurnitureBody `json:"body,omitempty"`
}

// CreateTransactionRequest petición de creación de transacción.
type CreateTransactionRequest struct {
	Entity       EntityRef                `json:"entity"`
	Type         string                   `json:"type"`
	Furniture    []TransactionLineRequest `json:"furniture"`
	Observations string                   `json:"observations"`
}

// UpdateTransactionRequest solo furniture y observations son mutables.
type UpdateTransactionRequest struct {
	Furniture    []TransactionLineRequest `json:"furniture"`
	Observations *string                  `json:"observations"`
}

// TransactionLineResponse línea resuelta con precio unitario e importe.
type TransactionLineResponse struct {
	FurnitureID   string          `json:"furniture_id"`
	FurnitureName string          `json:"furniture_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
}

// TransactionResponse representación pública de una transacción.
type TransactionResponse struct {
	ID           string                    `json:"id"`
	Entity       EntityRef                 `json:"entity"`
	Type         string                    `json:"type"`
	Furniture    []TransactionLineResponse `json:"furniture"`
	Observations string                    `json:"observations,omitempty"`
	TotalAmount  decimal.Decimal           `json:"total_amount"`
	DateTime     time.Time                 `json:"date_time"`
}

// TransactionListQuery filtros del listado de transacciones.
type TransactionListQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Type      string `query:"type"`
	NIF       string `query:"nif"`
	CIF       string `query:"cif"`
}
