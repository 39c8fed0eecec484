// Package pdf genera el reporte imprimible de SKUs bajo su punto de reorden.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + nombre del sistema │ Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Bodega | Proveedor | Actual | Mín | Faltante │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems y unidades faltantes                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/dto"
)

var _ catalog.LowStockReportRenderer = (*LowStockReport)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// LowStockReport implementa catalog.LowStockReportRenderer usando Maroto v2.
type LowStockReport struct {
	appName string
}

// NewLowStockReport construye el generador; appName aparece en el encabezado.
func NewLowStockReport(appName string) *LowStockReport {
	return &LowStockReport{appName: appName}
}

// RenderLowStock genera el PDF con los ítems en el orden recibido (menor stock primero).
func (g *LowStockReport) RenderLowStock(_ context.Context, items []dto.SKUResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Low-Stock Report", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No items below their reorder point.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LOW-STOCK REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(appName, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.UTC().Format("2006-01-02 15:04 MST"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Name", 3, align.Left),
		h("Warehouse", 2, align.Left),
		h("Supplier", 2, align.Left),
		h("Current", 1, align.Right),
		h("Min", 1, align.Right),
		h("Short", 1, align.Right),
	)
}

func tableDetailRows(items []dto.SKUResponse) []core.Row {
	cell := func(s string, size int, a align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(it.SKU, 2, align.Left, nil),
			cell(it.Name, 3, align.Left, nil),
			cell(nonEmpty(it.Warehouse.Name, it.Warehouse.ID), 2, align.Left, colorGray),
			cell(nonEmpty(it.Supplier.Name, it.Supplier.ID), 2, align.Left, colorGray),
			cell(strconv.Itoa(it.CurrentStock), 1, align.Right, colorAlert),
			cell(strconv.Itoa(it.MinStockLevel), 1, align.Right, nil),
			cell(strconv.Itoa(shortfall(it)), 1, align.Right, colorAlert),
		))
	}
	return result
}

func summaryRow(items []dto.SKUResponse) core.Row {
	units := 0
	for _, it := range items {
		units += shortfall(it)
	}
	return row.New(10).Add(
		col.New(6),
		col.New(6).Add(text.New(
			fmt.Sprintf("Items: %d   |   Units to reorder: %d", len(items), units),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1},
		)),
	)
}

func shortfall(it dto.SKUResponse) int {
	if d := it.MinStockLevel - it.CurrentStock; d > 0 {
		return d
	}
	return 0
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
