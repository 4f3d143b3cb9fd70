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

// FurnitureUseCase casos de uso CRUD para el catálogo de muebles.
// El stock solo se ajusta aquí en el alta; después lo gobierna el flujo de transacciones.
type FurnitureUseCase struct {
	repo repository.FurnitureRepository
}

// NewFurnitureUseCase construye el caso de uso.
func NewFurnitureUseCase(repo repository.FurnitureRepository) *FurnitureUseCase {
	return &FurnitureUseCase{repo: repo}
}

// Create valida y persiste un mueble nuevo. El nombre debe ser único.
func (uc *FurnitureUseCase) Create(in dto.CreateFurnitureRequest) (*dto.FurnitureResponse, error) {
	ftype := strings.TrimSpace(in.Type)
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	color := strings.TrimSpace(in.Color)
	dimensions := strings.TrimSpace(in.Dimensions)

	if err := validate.Furniture(ftype, name, description, color, dimensions, in.Price, in.Stock); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByName(name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	furniture := &entity.Furniture{
		ID:          uuid.New().String(),
		Type:        ftype,
		Name:        name,
		Description: description,
		Color:       color,
		Dimensions:  dimensions,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(furniture); err != nil {
		return nil, err
	}
	return toFurnitureResponse(furniture), nil
}

// List devuelve muebles filtrados por nombre/descripción/color (substring, case-insensitive).
func (uc *FurnitureUseCase) List(filter repository.FurnitureFilter, limit, offset int) ([]*dto.FurnitureResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FurnitureResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toFurnitureResponse(f))
	}
	return out, nil
}

// GetByID obtiene un mueble por ID.
func (uc *FurnitureUseCase) GetByID(id string) (*dto.FurnitureResponse, error) {
	furniture, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if furniture == nil {
		return nil, domain.ErrNotFound
	}
	return toFurnitureResponse(furniture), nil
}

// GetByName obtiene un mueble por su nombre exacto.
func (uc *FurnitureUseCase) GetByName(name string) (*dto.FurnitureResponse, error) {
	furniture, err := uc.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if furniture == nil {
		return nil, domain.ErrNotFound
	}
	return toFurnitureResponse(furniture), nil
}

// Update aplica los campos mutables (nunca stock) a un mueble existente (por ID).
func (uc *FurnitureUseCase) Update(id string, in dto.UpdateFurnitureRequest) (*dto.FurnitureResponse, error) {
	furniture, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if furniture == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(furniture, in)
}

// UpdateByName aplica los campos mutables a un mueble existente (por nombre).
func (uc *FurnitureUseCase) UpdateByName(name string, in dto.UpdateFurnitureRequest) (*dto.FurnitureResponse, error) {
	furniture, err := uc.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if furniture == nil {
		return nil, domain.ErrNotFound
	}
	return uc.applyUpdate(furniture, in)
}

func (uc *FurnitureUseCase) applyUpdate(furniture *entity.Furniture, in dto.UpdateFurnitureRequest) (*dto.FurnitureResponse, error) {
	if in.Type != nil {
		furniture.Type = strings.TrimSpace(*in.Type)
	}
	if in.Name != nil {
		furniture.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		furniture.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil {
		furniture.Color = strings.TrimSpace(*in.Color)
	}
	if in.Dimensions != nil {
		furniture.Dimensions = strings.TrimSpace(*in.Dimensions)
	}
	if in.Price != nil {
		furniture.Price = *in.Price
	}
	if err := validate.Furniture(furniture.Type, furniture.Name, furniture.Description,
		furniture.Color, furniture.Dimensions, furniture.Price, furniture.Stock); err != nil {
		return nil, err
	}
	furniture.UpdatedAt = time.Now()
	if err := uc.repo.Update(furniture); err != nil {
		return nil, err
	}
	return toFurnitureResponse(furniture), nil
}

// Delete elimina un mueble por ID.
func (uc *FurnitureUseCase) Delete(id string) error {
	furniture, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if furniture == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(furniture.ID)
}

// DeleteByName elimina un mueble por su nombre exacto.
func (uc *FurnitureUseCase) DeleteByName(name string) error {
	furniture, err := uc.repo.GetByName(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if furniture == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(furniture.ID)
}

func toFurnitureResponse(f *entity.Furniture) *dto.FurnitureResponse {
	return &dto.FurnitureResponse{
		ID:          f.ID,
		Type:        f.Type,
		Name:        f.Name,
		Description: f.Description,
		Color:       f.Color,
		Dimensions:  f.Dimensions,
		Price:       f.Price,
		Stock:       f.Stock,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
