package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de mueble admitidas.
var FurnitureTypes = []string{
	"Sofa", "Table", "Chair", "Bed", "Wardrobe", "Desk",
	"Shelf", "Dresser", "Cupboard", "Stool", "Couches", "Sideboard",
}

// IsFurnitureType indica si t es una categoría válida.
func IsFurnitureType(t string) bool {
	for _, ft := range FurnitureTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Furniture representa un mueble del catálogo.
// Stock lo muta únicamente el flujo de transacciones; el resto de campos
// se editan por los endpoints de actualización directa.
type Furniture struct {
	ID          string
	Type        string // una de FurnitureTypes
	Name        string // único (clave natural)
	Description string
	Color       string
	Dimensions  string
	Price       decimal.Decimal // >= 0
	Stock       int64           // >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
