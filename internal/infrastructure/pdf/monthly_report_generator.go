// Package pdf implementa a geração do relatório financeiro mensal em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da choperia  │  Mês de referência             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Faturamento / Despesas / Lucro / Margem / Saldo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Despesas por categoria                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: contagens do mês + data de emissão                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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

	"github.com/seu-usuario/choperia-api/internal/application/analytics"
)

var (
	colorPrimary = &props.Color{Red: 180, Green: 120, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MonthlyReportGenerator gera o relatório financeiro mensal usando Maroto v2.
type MonthlyReportGenerator struct {
	appName string
}

// NewMonthlyReportGenerator constrói o gerador.
func NewMonthlyReportGenerator(appName string) *MonthlyReportGenerator {
	return &MonthlyReportGenerator{appName: appName}
}

// Generate gera o PDF do resumo mensal e devolve os bytes.
func (g *MonthlyReportGenerator) Generate(summary *analytics.MonthlySummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro Mensal", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(expenseTableHeaderRow())
	m.AddRows(expenseTableRows(summary)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da casa (esq) e mês de referência (dir).
func (g *MonthlyReportGenerator) headerRow(summary *analytics.MonthlySummary) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório Financeiro Mensal", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(summary.Month, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 5,
			}),
		),
	)
}

// summaryRows: os cinco valores do resumo, um por linha.
func summaryRows(summary *analytics.MonthlySummary) []core.Row {
	items := []struct {
		label string
		value string
	}{
		{"Faturamento do Mês", summary.Revenue},
		{"Total de Despesas", summary.Expenses},
		{"Lucro Líquido", summary.Profit},
		{"Margem de Lucro", summary.Margin},
		{"Saldo em Caixa", summary.Balance},
	}
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row.New(7).Add(
			col.New(8).Add(
				text.New(item.label, props.Text{Size: 9, Top: 1}),
			),
			col.New(4).Add(
				text.New(item.value, props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
				}),
			),
		))
	}
	return rows
}

func expenseTableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(8).Add(
			text.New("DESPESAS POR CATEGORIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("VALOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right, Top: 2,
			}),
		),
	)
}

func expenseTableRows(summary *analytics.MonthlySummary) []core.Row {
	if len(summary.Expense) == 0 {
		return []core.Row{row.New(7).Add(
			col.New(12).Add(
				text.New("Sem despesas registradas no mês.", props.Text{
					Size: 9, Color: colorGray, Top: 1,
				}),
			),
		)}
	}
	rows := make([]core.Row, 0, len(summary.Expense))
	for _, e := range summary.Expense {
		amount, _ := e.Amount.Float64()
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(
				text.New(e.Category, props.Text{Size: 9, Top: 1}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("R$ %.2f", amount), props.Text{
					Size: 9, Align: align.Right, Top: 1,
				}),
			),
		))
	}
	return rows
}

func footerRow(summary *analytics.MonthlySummary) core.Row {
	issued := time.Now().Format("02/01/2006 15:04")
	return row.New(10).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Entradas no mês: %d   |   Eventos no mês: %d",
				summary.Entries, summary.Events,
			), props.Text{Size: 8, Color: colorGray, Top: 2}),
		),
		col.New(4).Add(
			text.New("Emitido em "+issued, props.Text{
				Size: 8, Color: colorGray, Align: align.Right, Top: 2,
			}),
		),
	)
}
