package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
	"github.com/tu-usuario/muebleria-api/internal/domain/validate"
)

// ProviderUseCase casos de uso CRUD para proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// Create valida y persiste un proveedor nuevo. CIF, email y teléfono deben ser únicos.
func (uc *ProviderUseCase) Create(in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	name := strings.TrimSpace(in.Name)
	cif := strings.TrimSpace(in.CIF)
	address := strings.TrimSpace(in.Address)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if err := validate.Provider(name, cif, address, email, phone); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCIF(cif)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	provider := &entity.Provider{
		ID:        uuid.New().String(),
		Name:      name,
		CIF:       cif,
		Address:   address,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// List devuelve proveedores, opcionalmente filtrados por CIF exacto.
func (uc *ProviderUseCase) List(cif string, limit, offset int) ([]*dto.ProviderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(strings.TrimSpace(cif), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProviderResponse(p))
	}
	return out, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProviderUseCase) GetByID(id string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(provider), nil
}

// GetByCIF obtiene un proveedor por su clave natural.
func (uc *ProviderUseCase) GetByCIF(cif string) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByCIF(strings.TrimSpace(cif))
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(provider), nil
}

// Update aplica los campos mutables a un proveedor existente (por ID).
func (uc *ProviderUseCase) Update(id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(provider, in)
}

// UpdateByCIF aplica los campos mutables a un proveedor existente (por CIF).
func (uc *ProviderUseCase) UpdateByCIF(cif string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	provider, err := uc.repo.GetByCIF(strings.TrimSpace(cif))
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(provider, in)
}

func (uc *ProviderUseCase) applyUpdate(provider *entity.Provider, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	if in.Name != nil {
		provider.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		provider.Address = strings.TrimSpace(*in.Address)
	}
	if in.Email != nil {
		provider.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		provider.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := validate.Provider(provider.Name, provider.CIF, provider.Address, provider.Email, provider.Phone); err != nil {
		return nil, err
	}
	provider.UpdatedAt = time.Now()
	if err := uc.repo.Update(provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// Delete elimina un proveedor por ID.
func (uc *ProviderUseCase) Delete(id string) error {
	provider, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(provider.ID)
}

// DeleteByCIF elimina un proveedor por su clave natural.
func (uc *ProviderUseCase) DeleteByCIF(cif string) error {
	provider, err := uc.repo.GetByCIF(strings.TrimSpace(cif))
	if err != nil {
		return err
	}
	if provider == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(provider.ID)
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		CIF:       p.CIF,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
