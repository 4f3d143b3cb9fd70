package repository

import (
	"time"

	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
)

// TransactionFilter criterios de listado de transacciones.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
	NIF       string // filtra por cliente
	CIF       string // filtra por proveedor
}

// TransactionRepository define el puerto de persistencia para Transaction y sus líneas.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List(filter TransactionFilter, limit, offset int) ([]*entity.Transaction, error)
	// UpdateLines reemplaza las líneas y observaciones y recalcula el registro.
	UpdateLines(tx *entity.Transaction) error
	Delete(id string) error
}
