package transaction

import (
	"context"

	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que el ajuste de stock y la persistencia de la
// transacción sean atómicos: si una línea falla, ningún stock queda tocado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		furnitureRepo repository.FurnitureRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}

// ReceiptPDFGenerator genera el justificante PDF de una transacción.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, trans *entity.Transaction, entityName string) ([]byte, error)
}
