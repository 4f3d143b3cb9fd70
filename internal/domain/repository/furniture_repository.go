package repository

import "github.com/tu-usuario/muebleria-api/internal/domain/entity"

// FurnitureFilter criterios de búsqueda de muebles (substring, case-insensitive).
type FurnitureFilter struct {
	Name        string
	Description string
	Color       string
}

// FurnitureRepository define el puerto de persistencia para Furniture.
// GetByNameForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE):
// el flujo de transacciones lo usa para bloquear la fila antes de ajustar stock.
type FurnitureRepository interface {
	Create(furniture *entity.Furniture) error
	GetByID(id string) (*entity.Furniture, error)
	GetByName(name string) (*entity.Furniture, error)
	GetByNameForUpdate(name string) (*entity.Furniture, error)
	GetByIDForUpdate(id string) (*entity.Furniture, error)
	List(filter FurnitureFilter, limit, offset int) ([]*entity.Furniture, error)
	Update(furniture *entity.Furniture) error
	UpdateStock(id string, stock int64) error
	Delete(id string) error
}
