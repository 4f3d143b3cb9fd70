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

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo. NIF, email y teléfono deben ser únicos.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	nif := strings.TrimSpace(in.NIF)
	address := strings.TrimSpace(in.Address)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if err := validate.Customer(name, nif, address, email, phone); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByNIF(nif)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		NIF:       nif,
		Address:   address,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve clientes, opcionalmente filtrados por NIF exacto.
func (uc *CustomerUseCase) List(nif string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(strings.TrimSpace(nif), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// GetByNIF obtiene un cliente por su clave natural.
func (uc *CustomerUseCase) GetByNIF(nif string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByNIF(strings.TrimSpace(nif))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update aplica los campos mutables a un cliente existente (por ID).
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(customer, in)
}

// UpdateByNIF aplica los campos mutables a un cliente existente (por NIF).
func (uc *CustomerUseCase) UpdateByNIF(nif string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByNIF(strings.TrimSpace(nif))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(customer, in)
}

func (uc *CustomerUseCase) applyUpdate(customer *entity.Customer, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name != nil {
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		customer.Address = strings.TrimSpace(*in.Address)
	}
	if in.Email != nil {
		customer.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		customer.Phone = strings.TrimSpace(*in.Phone)
	}
	if err := validate.Customer(customer.Name, customer.NIF, customer.Address, customer.Email, customer.Phone); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(customer.ID)
}

// DeleteByNIF elimina un cliente por su clave natural.
func (uc *CustomerUseCase) DeleteByNIF(nif string) error {
	customer, err := uc.repo.GetByNIF(strings.TrimSpace(nif))
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(customer.ID)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIF:       c.NIF,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
