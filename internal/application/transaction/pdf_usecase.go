package transaction

import (
	"context"

	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
)

// PDFUseCase genera el justificante PDF de una transacción.
type PDFUseCase struct {
	transactionRepo repository.TransactionRepository
	customerRepo    repository.CustomerRepository
	providerRepo    repository.ProviderRepository
	generator       ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	transactionRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	providerRepo repository.ProviderRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		providerRepo:    providerRepo,
		generator:       generator,
	}
}

// ReceiptPDF carga la transacción, resuelve el nombre de la entidad y genera el PDF.
func (uc *PDFUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	trans, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trans == nil {
		return nil, domain.ErrNotFound
	}

	entityName := trans.EntityTaxID
	switch trans.EntityKind {
	case entity.EntityCustomer:
		if customer, err := uc.customerRepo.GetByID(trans.EntityID); err == nil && customer != nil {
			entityName = customer.Name
		}
	case entity.EntityProvider:
		if provider, err := uc.providerRepo.GetByID(trans.EntityID); err == nil && provider != nil {
			entityName = provider.Name
		}
	}
	return uc.generator.GenerateReceiptPDF(ctx, trans, entityName)
}
