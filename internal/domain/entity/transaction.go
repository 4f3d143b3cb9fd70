package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TxPurchaseOrder    = "Purchase Order"      // compra a proveedor (entrada)
	TxSellOrder        = "Sell Order"          // venta a cliente (salida)
	TxRefundFromClient = "Refund from client"  // devolución de cliente (entrada)
	TxRefundToProvider = "Refund to provider"  // devolución a proveedor (salida)
)

// Tipos de entidad que pueden participar en una transacción.
const (
	EntityCustomer = "Customer"
	EntityProvider = "Provider"
)

// IsTransactionType indica si t es uno de los cuatro tipos admitidos.
func IsTransactionType(t string) bool {
	switch t {
	case TxPurchaseOrder, TxSellOrder, TxRefundFromClient, TxRefundToProvider:
		return true
	}
	return false
}

// IsInbound indica si el tipo incrementa stock (Purchase Order, Refund from client).
func IsInbound(t string) bool {
	return t == TxPurchaseOrder || t == TxRefundFromClient
}

// AllowedTransaction implementa la tabla de compatibilidad entidad × tipo:
// los clientes venden/devuelven al cliente, los proveedores compran/reciben devoluciones.
func AllowedTransaction(entityKind, txType string) bool {
	switch entityKind {
	case EntityCustomer:
		return txType == TxSellOrder || txType == TxRefundFromClient
	case EntityProvider:
		return txType == TxPurchaseOrder || txType == TxRefundToProvider
	}
	return false
}

// TransactionLine es una línea {mueble, cantidad} con el precio unitario
// resuelto en el momento de crear/actualizar la transacción.
type TransactionLine struct {
	FurnitureID   string
	FurnitureName string
	Quantity      int64 // >= 1
	UnitPrice     decimal.Decimal
}

// Total devuelve UnitPrice × Quantity.
func (l TransactionLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Transaction representa un apunte del libro de transacciones.
// Inmutable tras su creación salvo Lines y Observations.
type Transaction struct {
	ID           string
	EntityKind   string // Customer | Provider
	EntityID     string
	EntityTaxID  string // NIF o CIF en el momento de la transacción
	Type         string // uno de los cuatro tipos
	Lines        []TransactionLine
	Observations string
	TotalAmount  decimal.Decimal // derivado: Σ línea.Total()
	DateTime     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComputeTotal devuelve la suma de los totales de línea.
func ComputeTotal(lines []TransactionLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}
