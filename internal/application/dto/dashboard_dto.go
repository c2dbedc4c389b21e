package dto

import "github.com/shopspring/decimal"

// Tipos de variação exibidos nos cartões de métrica.
const (
	ChangeIncrease = "increase"
	ChangeDecrease = "decrease"
)

// MetricDTO cartão de métrica do dashboard. Change é omitido quando o
// período anterior é zero (evita um "+∞%" espúrio).
type MetricDTO struct {
	Title      string  `json:"title"`
	Value      string  `json:"value"`
	Change     *string `json:"change,omitempty"`
	ChangeType string  `json:"change_type,omitempty"` // increase | decrease
}

// ChartDTO série de faturamento dos últimos 6 meses.
type ChartDTO struct {
	Labels []string          `json:"labels"` // nomes dos meses em pt-BR
	Values []decimal.Decimal `json:"values"`
}

// ExpenseByCategoryDTO fatia da quebra de despesas do mês por categoria,
// ordenada por valor decrescente.
type ExpenseByCategoryDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
}

// KPIDTO indicador simples título/valor.
type KPIDTO struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// TransactionDTO transação recente (entrada ou saída) com data relativa.
type TransactionDTO struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"` // income | expense
	Date        string          `json:"date"` // "Hoje", "2 dias atrás", "12/07/2024"
}

// DashboardDataDTO resposta de GET /api/dashboard.
type DashboardDataDTO struct {
	Metrics            []MetricDTO            `json:"metrics"`
	RevenueChart       ChartDTO               `json:"revenue_chart"`
	ExpensesByCategory []ExpenseByCategoryDTO `json:"expenses_by_category"`
	KPIs               []KPIDTO               `json:"kpis"`
	RecentTransactions []TransactionDTO       `json:"recent_transactions"`
}
