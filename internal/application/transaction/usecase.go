package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
	"github.com/tu-usuario/muebleria-api/internal/domain/validate"
)

// UseCase orquesta el flujo completo de transacciones: resolución de entidad,
// tabla de compatibilidad entidad × tipo, libro de muebles (ajuste de stock con
// bloqueo de fila) y persistencia del apunte, todo dentro de una transacción SQL.
type UseCase struct {
	txRunner        TxRunner
	customerRepo    repository.CustomerRepository
	providerRepo    repository.ProviderRepository
	transactionRepo repository.TransactionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderRepository,
	transactionRepo repository.TransactionRepository,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		customerRepo:    customerRepo,
		providerRepo:    providerRepo,
		transactionRepo: transactionRepo,
	}
}

// resolvedEntity entidad resuelta a partir de la referencia etiquetada.
type resolvedEntity struct {
	Kind  string
	ID    string
	TaxID string
}

// resolveEntity busca la entidad referenciada: Customer por NIF, Provider por CIF.
// Sin efectos secundarios.
func (uc *UseCase) resolveEntity(ref dto.EntityRef) (*resolvedEntity, error) {
	switch ref.Type {
	case entity.EntityCustomer:
		customer, err := uc.customerRepo.GetByNIF(strings.TrimSpace(ref.NIF))
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return &resolvedEntity{Kind: entity.EntityCustomer, ID: customer.ID, TaxID: customer.NIF}, nil
	case entity.EntityProvider:
		provider, err := uc.providerRepo.GetByCIF(strings.TrimSpace(ref.CIF))
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, domain.ErrNotFound
		}
		return &resolvedEntity{Kind: entity.EntityProvider, ID: provider.ID, TaxID: provider.CIF}, nil
	default:
		return nil, domain.ErrInvalidEntity
	}
}

// Create valida entidad y tipo, recorre las líneas ajustando stock (con la fila
// del mueble bloqueada) y persiste la transacción con el importe acumulado.
// Todo el paso 3-4 del flujo corre dentro de una única transacción SQL: un fallo
// en cualquier línea revierte los ajustes de stock anteriores.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	txType := strings.TrimSpace(in.Type)
	if !entity.IsTransactionType(txType) {
		return nil, domain.ErrInvalidInput
	}
	ref, err := uc.resolveEntity(in.Entity)
	if err != nil {
		return nil, err
	}
	if !entity.AllowedTransaction(ref.Kind, txType) {
		return nil, domain.ErrInvalidTransactionType
	}
	if len(in.Furniture) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Furniture {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	now := time.Now()
	trans := &entity.Transaction{
		ID:           uuid.New().String(),
		EntityKind:   ref.Kind,
		EntityID:     ref.ID,
		EntityTaxID:  ref.TaxID,
		Type:         txType,
		Observations: strings.TrimSpace(in.Observations),
		DateTime:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		furnitureRepo repository.FurnitureRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		lines, err := applyLines(furnitureRepo, txType, in.Furniture, now, true)
		if err != nil {
			return err
		}
		trans.Lines = lines
		trans.TotalAmount = entity.ComputeTotal(lines)
		return transactionRepo.Create(trans)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(trans), nil
}

// Update aplica los únicos campos mutables: furniture y observations.
// Si llega una lista de líneas nueva, dentro de una misma transacción SQL se
// revierte el efecto de las líneas guardadas y se aplica la lista nueva
// (solo muebles existentes; aquí no hay auto-creación), recalculando el total.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	trans, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trans == nil {
		return nil, domain.ErrNotFound
	}
	if in.Observations != nil {
		trans.Observations = strings.TrimSpace(*in.Observations)
	}
	now := time.Now()
	trans.UpdatedAt = now

	if in.Furniture == nil {
		if err := uc.transactionRepo.UpdateLines(trans); err != nil {
			return nil, err
		}
		return toTransactionResponse(trans), nil
	}

	if len(in.Furniture) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Furniture {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	err = uc.txRunner.Run(ctx, func(
		furnitureRepo repository.FurnitureRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		if err := revertLines(furnitureRepo, trans.Type, trans.Lines, now); err != nil {
			return err
		}
		lines, err := applyLines(furnitureRepo, trans.Type, in.Furniture, now, false)
		if err != nil {
			return err
		}
		trans.Lines = lines
		trans.TotalAmount = entity.ComputeTotal(lines)
		return transactionRepo.UpdateLines(trans)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(trans), nil
}

// applyLines recorre las líneas en orden, bloquea cada mueble (FOR UPDATE) y
// ajusta su stock según la dirección del tipo. allowCreate habilita la
// auto-creación de muebles desconocidos en tipos de entrada (solo en el alta).
func applyLines(
	furnitureRepo repository.FurnitureRepository,
	txType string,
	items []dto.TransactionLineRequest,
	now time.Time,
	allowCreate bool,
) ([]entity.TransactionLine, error) {
	inbound := entity.IsInbound(txType)
	lines := make([]entity.TransactionLine, 0, len(items))

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		furniture, err := furnitureRepo.GetByNameForUpdate(name)
		if err != nil {
			return nil, err
		}

		if furniture == nil {
			if !inbound || !allowCreate {
				return nil, domain.ErrNotFound
			}
			// Mueble desconocido en una entrada: se da de alta desde el body
			// con stock igual a la cantidad recibida.
			if item.Body == nil {
				return nil, domain.ErrInvalidInput
			}
			body := *item.Body
			if err := validate.Furniture(strings.TrimSpace(body.Type), name,
				strings.TrimSpace(body.Description), strings.TrimSpace(body.Color),
				strings.TrimSpace(body.Dimensions), body.Price, item.Quantity); err != nil {
				return nil, err
			}
			furniture = &entity.Furniture{
				ID:          uuid.New().String(),
				Type:        strings.TrimSpace(body.Type),
				Name:        name,
				Description: strings.TrimSpace(body.Description),
				Color:       strings.TrimSpace(body.Color),
				Dimensions:  strings.TrimSpace(body.Dimensions),
				Price:       body.Price,
				Stock:       item.Quantity,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := furnitureRepo.Create(furniture); err != nil {
				return nil, err
			}
		} else {
			if inbound {
				furniture.Stock += item.Quantity
			} else {
				if furniture.Stock < item.Quantity {
					return nil, domain.ErrInsufficientStock
				}
				furniture.Stock -= item.Quantity
			}
			if err := furnitureRepo.UpdateStock(furniture.ID, furniture.Stock); err != nil {
				return nil, err
			}
		}

		lines = append(lines, entity.TransactionLine{
			FurnitureID:   furniture.ID,
			FurnitureName: furniture.Name,
			Quantity:      item.Quantity,
			UnitPrice:     furniture.Price,
		})
	}
	return lines, nil
}

// revertLines deshace el efecto de stock de las líneas guardadas: las entradas
// restan lo sumado y las salidas devuelven lo restado. Revertir una entrada
// puede dejar stock negativo si el género ya salió; en ese caso se aborta.
func revertLines(
	furnitureRepo repository.FurnitureRepository,
	txType string,
	lines []entity.TransactionLine,
	now time.Time,
) error {
	inbound := entity.IsInbound(txType)
	for _, line := range lines {
		furniture, err := furnitureRepo.GetByIDForUpdate(line.FurnitureID)
		if err != nil {
			return err
		}
		if furniture == nil {
			// El mueble fue borrado del catálogo; no queda stock que revertir.
			continue
		}
		if inbound {
			if furniture.Stock < line.Quantity {
				return domain.ErrInsufficientStock
			}
			furniture.Stock -= line.Quantity
		} else {
			furniture.Stock += line.Quantity
		}
		if err := furnitureRepo.UpdateStock(furniture.ID, furniture.Stock); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	trans, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trans == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(trans), nil
}

// List devuelve transacciones filtradas por rango de fechas, tipo y NIF/CIF.
func (uc *UseCase) List(ctx context.Context, q dto.TransactionListQuery, limit, offset int) ([]*dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.transactionRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// Delete elimina una transacción. No restaura stock: el apunte desaparece pero
// el inventario refleja lo que físicamente entró o salió.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	trans, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if trans == nil {
		return domain.ErrNotFound
	}
	return uc.transactionRepo.Delete(trans.ID)
}

// buildFilter convierte los parámetros query en un filtro de repositorio.
// Acepta fechas RFC3339 o "2006-01-02".
func buildFilter(q dto.TransactionListQuery) (repository.TransactionFilter, error) {
	var filter repository.TransactionFilter
	if q.StartDate != "" {
		t, err := parseDate(q.StartDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := parseDate(q.EndDate)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.EndDate = &t
	}
	if q.Type != "" {
		if !entity.IsTransactionType(q.Type) {
			return filter, domain.ErrInvalidInput
		}
		filter.Type = q.Type
	}
	filter.NIF = strings.TrimSpace(q.NIF)
	filter.CIF = strings.TrimSpace(q.CIF)
	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	ref := dto.EntityRef{Type: t.EntityKind}
	if t.EntityKind == entity.EntityCustomer {
		ref.NIF = t.EntityTaxID
	} else {
		ref.CIF = t.EntityTaxID
	}
	lines := make([]dto.TransactionLineResponse, 0, len(t.Lines))
	for _, l := range t.Lines {
		lines = append(lines, dto.TransactionLineResponse{
			FurnitureID:   l.FurnitureID,
			FurnitureName: l.FurnitureName,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Total:         l.Total(),
		})
	}
	return &dto.TransactionResponse{
		ID:           t.ID,
		Entity:       ref,
		Type:         t.Type,
		Furniture:    lines,
		Observations: t.Observations,
		TotalAmount:  t.TotalAmount,
		DateTime:     t.DateTime,
	}
}
