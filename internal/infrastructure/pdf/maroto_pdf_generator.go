// Package pdf genera la versión imprimible del reporte diario de recaudo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: OroPlan + "Reporte Diario de Recaudo" + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pagos / total / clientes / cobradores / promedio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: desglose por método (conteo, total)                 │
//	│  TABLA: desglose por cobrador (código, pagos, recaudo)      │
//	│  TABLA: listado de pagos (cliente, cobrador, método, monto) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 146, Green: 104, Blue: 10}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// DailyReport genera el PDF del reporte diario y devuelve sus bytes.
func (g *MarotoPDFGenerator) DailyReport(report dto.DailyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Diario de Recaudo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("DESGLOSE POR MÉTODO DE PAGO"))
	m.AddRows(methodHeaderRow())
	for _, r := range methodRows(report.ByMethod) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("DESGLOSE POR COBRADOR"))
	m.AddRows(staffHeaderRow())
	for _, r := range staffRows(report.ByStaff) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("PAGOS DEL DÍA"))
	m.AddRows(paymentHeaderRow())
	for _, r := range paymentRows(report.Payments) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report dto.DailyReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("OroPlan", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte Diario de Recaudo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+report.Date, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

func summaryRow(report dto.DailyReportDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		col.New(1),
		kpi("Pagos", fmt.Sprintf("%d", report.TotalPayments)),
		kpi("Total", "₹"+report.TotalAmount.StringFixed(2)),
		kpi("Clientes", fmt.Sprintf("%d", report.UniqueCustomers)),
		kpi("Cobradores", fmt.Sprintf("%d", report.ActiveStaff)),
		kpi("Promedio", "₹"+report.AveragePayment.StringFixed(2)),
		col.New(1),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	r := row.New(7)
	cols := make([]core.Col, 0, len(labels))
	for i, label := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorGray,
		})))
	}
	return r.Add(cols...)
}

func methodHeaderRow() core.Row {
	return tableHeader([]string{"Método", "Pagos", "Total"}, []int{6, 3, 3})
}

func methodRows(groups []dto.MethodGroupDTO) []core.Row {
	result := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(g.Method, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", g.Count), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("₹"+g.Total.StringFixed(2), props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

func staffHeaderRow() core.Row {
	return tableHeader([]string{"Cobrador", "Código", "Pagos", "Clientes", "Recaudo"}, []int{4, 2, 2, 2, 2})
}

func staffRows(groups []dto.DailyStaffGroupDTO) []core.Row {
	result := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(g.StaffName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(g.StaffCode, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.PaymentCount), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", g.CustomersVisited), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New("₹"+g.TotalCollected.StringFixed(2), props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

func paymentHeaderRow() core.Row {
	return tableHeader([]string{"Cliente", "Cobrador", "Método", "Monto"}, []int{4, 4, 2, 2})
}

func paymentRows(payments []dto.DailyPaymentDTO) []core.Row {
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(p.CustomerName, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(p.StaffName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(p.Method, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New("₹"+p.Amount.StringFixed(2), props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}
