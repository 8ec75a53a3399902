// Package pdf genera el comprobante de cierre de caja (arqueo) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  COMPROBANTE DE CIERRE DE CAJA   │  N° caja  │
//	│  ─────────────────────────────────────────  │
//	│  Sucursal / Apertura / Cierre               │
//	│  ─────────────────────────────────────────  │
//	│  Monto inicial | Monto final | Diferencia   │
//	└─────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/application/caja"
	"github.com/puntoclave/retail-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ caja.ReceiptGenerator = (*CloseReceiptGenerator)(nil)

// CloseReceiptGenerator implementa caja.ReceiptGenerator usando Maroto v2.
type CloseReceiptGenerator struct{}

// NewCloseReceiptGenerator construye el generador.
func NewCloseReceiptGenerator() *CloseReceiptGenerator { return &CloseReceiptGenerator{} }

// GenerateCloseReceipt genera el PDF del cierre y devuelve sus bytes.
// La caja debe venir CERRADA y con el nombre de sucursal resuelto.
func (g *CloseReceiptGenerator) GenerateCloseReceipt(_ context.Context, session *entity.CashSession) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de cierre de caja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(session))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailRow(session))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountsRow(session))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y número de caja (der).
func headerRow(session *entity.CashSession) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("COMPROBANTE DE CIERRE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Caja N° %d", session.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}

// detailRow: sucursal y fechas de apertura/cierre.
func detailRow(session *entity.CashSession) core.Row {
	cierre := "—"
	if session.ClosedAt != nil {
		cierre = session.ClosedAt.Format("02/01/2006 15:04")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Sucursal: "+session.BranchName, props.Text{Size: 9, Top: 1}),
			text.New(fmt.Sprintf("Apertura: %s   |   Cierre: %s",
				session.OpenedAt.Format("02/01/2006 15:04"), cierre,
			), props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// amountsRow: monto inicial, monto final y diferencia.
func amountsRow(session *entity.CashSession) core.Row {
	final := decimal.Zero
	if session.FinalAmount.Valid {
		final = session.FinalAmount.Decimal
	}
	diff := final.Sub(session.InitialAmount)
	return row.New(16).Add(
		col.New(4).Add(
			text.New("Monto inicial", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("$ "+session.InitialAmount.StringFixed(2), props.Text{Size: 11, Top: 7}),
		),
		col.New(4).Add(
			text.New("Monto final", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("$ "+final.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		),
		col.New(4).Add(
			text.New("Diferencia", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("$ "+diff.StringFixed(2), props.Text{Size: 11, Top: 7}),
		),
	)
}
