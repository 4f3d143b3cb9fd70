// Package pdf implementa el justificante en PDF de una transacción
// (orden de compra, venta o devolución) con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Mueblería + tipo de transacción │ N° + Fecha       │
//	│  ───────────────────────────────────────────────────────── │
//	│  ENTIDAD: Nombre + NIF/CIF                                  │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLA: Cant | Mueble | P.Unit | Importe                    │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apptransaction "github.com/tu-usuario/muebleria-api/internal/application/transaction"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa transaction.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

var _ apptransaction.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// NewMarotoReceiptGenerator construye el generador con el nombre de la tienda.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceiptPDF genera el justificante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	trans *entity.Transaction,
	entityName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Justificante de transacción", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(trans))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(entityRow(trans, entityName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range trans.Lines {
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(trans))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: tienda + tipo (izq), referencia + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(trans *entity.Transaction) core.Row {
	ref := trans.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	fecha := trans.DateTime.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(trans.Type, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Ref: "+ref, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right,
			}),
			text.New(fecha, props.Text{Size: 9, Top: 9, Align: align.Right, Color: colorGray}),
		),
	)
}

// entityRow: nombre de la entidad y su NIF o CIF.
func entityRow(trans *entity.Transaction, entityName string) core.Row {
	label := "NIF"
	if trans.EntityKind == entity.EntityProvider {
		label = "CIF"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(entityName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(label+": "+trans.EntityTaxID, props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Mueble", header)),
		col.New(2).Add(text.New("P. Unit", mergeAlign(header, align.Right))),
		col.New(2).Add(text.New("Importe", mergeAlign(header, align.Right))),
	)
}

func lineRow(l entity.TransactionLine) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), cell)),
		col.New(6).Add(text.New(l.FurnitureName, cell)),
		col.New(2).Add(text.New(l.UnitPrice.StringFixed(2)+" €", mergeAlign(cell, align.Right))),
		col.New(2).Add(text.New(l.Total().StringFixed(2)+" €", mergeAlign(cell, align.Right))),
	)
}

func totalRow(trans *entity.Transaction) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right, Color: colorPrimary,
		})),
		col.New(4).Add(text.New(trans.TotalAmount.StringFixed(2)+" €", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right,
		})),
	)
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
