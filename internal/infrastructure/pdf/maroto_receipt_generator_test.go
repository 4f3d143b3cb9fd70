package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/infrastructure/pdf"
)

func TestGenerateReceiptPDF(t *testing.T) {
	gen := pdf.NewMarotoReceiptGenerator("Mueblería Central")

	trans := &entity.Transaction{
		ID:          "aabbccdd-0000-0000-0000-000000000000",
		EntityKind:  entity.EntityCustomer,
		EntityTaxID: "12345678Z",
		Type:        entity.TxSellOrder,
		Lines: []entity.TransactionLine{
			{FurnitureID: "f-1", FurnitureName: "Silla Nórdica", Quantity: 2, UnitPrice: decimal.NewFromFloat(79.95)},
			{FurnitureID: "f-2", FurnitureName: "Mesa Roble Macizo", Quantity: 1, UnitPrice: decimal.NewFromFloat(645.50)},
		},
		TotalAmount: decimal.NewFromFloat(805.40),
		DateTime:    time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC),
	}

	doc, err := gen.GenerateReceiptPDF(context.Background(), trans, "Pedro")
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "la salida debe ser un documento PDF")
}
