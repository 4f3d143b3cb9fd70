package repository

import "github.com/tu-usuario/muebleria-api/internal/domain/entity"

// ProviderRepository define el puerto de persistencia para Provider.
type ProviderRepository interface {
	Create(provider *entity.Provider) error
	GetByID(id string) (*entity.Provider, error)
	GetByCIF(cif string) (*entity.Provider, error)
	List(cif string, limit, offset int) ([]*entity.Provider, error)
	Update(provider *entity.Provider) error
	Delete(id string) error
}
