// Package analytics monta os dados do dashboard: métricas do mês, série de
// faturamento, quebra de despesas, KPIs e transações recentes.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
)

// Nomes dos meses em pt-BR, indexados por time.Month - 1.
var monthNames = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Paleta padrão da quebra de despesas, usada quando a categoria não tem cor
// própria. A cor é escolhida pela posição no ranking, ciclando na paleta.
var chartColors = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#C9CBCF",
}

// Rótulos de exibição das formas de pagamento.
var paymentLabels = map[string]string{
	entity.PaymentCash:       "Dinheiro",
	entity.PaymentPix:        "Pix",
	entity.PaymentCreditCard: "Cartão de Crédito",
	entity.PaymentDebitCard:  "Cartão de Débito",
}

const noDataLabel = "Sem dados"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Snapshot dados brutos de que o dashboard precisa, carregados de uma vez.
type Snapshot struct {
	Entries    []*entity.Entry
	Outputs    []*entity.Output
	Events     []*entity.Event
	Categories []*entity.Category
}

// BuildDashboard monta o dashboard completo a partir do snapshot. Função
// pura: toda a noção de "agora" vem do parâmetro now.
func BuildDashboard(now time.Time, snap Snapshot) *dto.DashboardDataDTO {
	curYear, curMonth := now.Year(), now.Month()
	// recuo ancorado no dia 1 para não pular mês em dias 29-31; em janeiro
	// o mês anterior é dezembro do ano anterior
	prevAnchor := time.Date(curYear, curMonth, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	prevYear, prevMonth := prevAnchor.Year(), prevAnchor.Month()

	categoriesByID := make(map[string]*entity.Category, len(snap.Categories))
	for _, c := range snap.Categories {
		categoriesByID[c.ID] = c
	}
	eventsByID := make(map[string]*entity.Event, len(snap.Events))
	for _, e := range snap.Events {
		eventsByID[e.ID] = e
	}

	var curRevenue, prevRevenue, totalRevenue decimal.Decimal
	for _, e := range snap.Entries {
		totalRevenue = totalRevenue.Add(e.Value)
		if sameMonth(e.Date, curYear, curMonth) {
			curRevenue = curRevenue.Add(e.Value)
		}
		if sameMonth(e.Date, prevYear, prevMonth) {
			prevRevenue = prevRevenue.Add(e.Value)
		}
	}
	var curExpenses, prevExpenses, totalExpenses decimal.Decimal
	for _, o := range snap.Outputs {
		totalExpenses = totalExpenses.Add(o.Value)
		if sameMonth(o.Date, curYear, curMonth) {
			curExpenses = curExpenses.Add(o.Value)
		}
		if sameMonth(o.Date, prevYear, prevMonth) {
			prevExpenses = prevExpenses.Add(o.Value)
		}
	}

	curProfit := curRevenue.Sub(curExpenses)
	prevProfit := prevRevenue.Sub(prevExpenses)
	balance := totalRevenue.Sub(totalExpenses)

	margin := decimal.Zero
	if curRevenue.IsPositive() {
		margin = curProfit.Div(curRevenue).Mul(decimal.NewFromInt(100))
	}

	metrics := []dto.MetricDTO{
		metric("Faturamento do Mês", formatCurrency(curRevenue), curRevenue, prevRevenue),
		metric("Total de Despesas", formatCurrency(curExpenses), curExpenses, prevExpenses),
		metric("Lucro Líquido", formatCurrency(curProfit), curProfit, prevProfit),
		{Title: "Margem de Lucro", Value: formatPercent(margin)},
		{Title: "Saldo em Caixa", Value: formatCurrency(balance)},
	}

	return &dto.DashboardDataDTO{
		Metrics:            metrics,
		RevenueChart:       revenueChart(now, snap.Entries),
		ExpensesByCategory: expensesByCategory(curYear, curMonth, snap.Outputs, categoriesByID),
		KPIs:               buildKPIs(curYear, curMonth, snap.Entries, snap.Events, eventsByID),
		RecentTransactions: recentTransactions(now, snap.Entries, snap.Outputs, categoriesByID),
	}
}

// metric monta um cartão com variação percentual contra o mês anterior.
// Sem base de comparação (anterior zero), a variação é omitida. Empate
// conta como aumento.
func metric(title, value string, current, previous decimal.Decimal) dto.MetricDTO {
	m := dto.MetricDTO{Title: title, Value: value}
	if previous.IsZero() {
		return m
	}
	pct := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	change := formatSignedPercent(pct)
	m.Change = &change
	if current.GreaterThanOrEqual(previous) {
		m.ChangeType = dto.ChangeIncrease
	} else {
		m.ChangeType = dto.ChangeDecrease
	}
	return m
}

// revenueChart série de faturamento dos últimos 6 meses (o atual incluído),
// do mais antigo para o mais recente.
func revenueChart(now time.Time, entries []*entity.Entry) dto.ChartDTO {
	chart := dto.ChartDTO{
		Labels: make([]string, 0, 6),
		Values: make([]decimal.Decimal, 0, 6),
	}
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 5; i >= 0; i-- {
		ref := anchor.AddDate(0, -i, 0)
		sum := decimal.Zero
		for _, e := range entries {
			if sameMonth(e.Date, ref.Year(), ref.Month()) {
				sum = sum.Add(e.Value)
			}
		}
		chart.Labels = append(chart.Labels, monthNames[ref.Month()-1])
		chart.Values = append(chart.Values, sum)
	}
	return chart
}

// expensesByCategory quebra das despesas do mês corrente agrupadas pelo
// nome da categoria, em ordem decrescente de valor. Saídas sem categoria
// resolvível caem em "Outros".
func expensesByCategory(year int, month time.Month, outputs []*entity.Output, categories map[string]*entity.Category) []dto.ExpenseByCategoryDTO {
	type slice struct {
		name   string
		amount decimal.Decimal
		color  string
	}
	grouped := make(map[string]*slice)
	var order []string
	for _, o := range outputs {
		if !sameMonth(o.Date, year, month) {
			continue
		}
		name := "Outros"
		color := ""
		if cat := categories[o.CategoryID]; cat != nil {
			if cat.Name != "" {
				name = cat.Name
			}
			color = cat.Color
		}
		s, ok := grouped[name]
		if !ok {
			s = &slice{name: name, color: color}
			grouped[name] = s
			order = append(order, name)
		}
		s.amount = s.amount.Add(o.Value)
	}

	slices := make([]*slice, 0, len(grouped))
	for _, name := range order {
		slices = append(slices, grouped[name])
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].amount.GreaterThan(slices[j].amount)
	})

	out := make([]dto.ExpenseByCategoryDTO, 0, len(slices))
	for i, s := range slices {
		color := s.color
		if color == "" {
			color = chartColors[i%len(chartColors)]
		}
		out = append(out, dto.ExpenseByCategoryDTO{
			Category: s.name,
			Amount:   s.amount,
			Color:    color,
		})
	}
	return out
}

// buildKPIs indicadores do mês corrente: evento mais lucrativo, forma de
// pagamento mais usada e contagens de eventos e entradas.
func buildKPIs(year int, month time.Month, entries []*entity.Entry, events []*entity.Event, eventsByID map[string]*entity.Event) []dto.KPIDTO {
	revenueByEvent := make(map[string]decimal.Decimal)
	paymentCount := make(map[string]int)
	entriesInMonth := 0
	for _, e := range entries {
		if !sameMonth(e.Date, year, month) {
			continue
		}
		entriesInMonth++
		if e.EventID != "" {
			revenueByEvent[e.EventID] = revenueByEvent[e.EventID].Add(e.Value)
		}
		if e.PaymentMethod != "" {
			paymentCount[e.PaymentMethod]++
		}
	}

	topEvent := noDataLabel
	var topRevenue decimal.Decimal
	for id, rev := range revenueByEvent {
		if rev.GreaterThan(topRevenue) {
			topRevenue = rev
			if ev := eventsByID[id]; ev != nil {
				topEvent = ev.Name
			}
		}
	}

	topPayment := noDataLabel
	topCount := 0
	for method, count := range paymentCount {
		if count > topCount {
			topCount = count
			if label, ok := paymentLabels[method]; ok {
				topPayment = label
			} else {
				topPayment = method
			}
		}
	}

	eventsInMonth := 0
	for _, ev := range events {
		if sameMonth(ev.Date, year, month) {
			eventsInMonth++
		}
	}

	return []dto.KPIDTO{
		{Title: "Evento Mais Lucrativo", Value: topEvent},
		{Title: "Forma de Pgto. Mais Usada", Value: topPayment},
		{Title: "Total de Eventos no Mês", Value: fmt.Sprintf("%d", eventsInMonth)},
		{Title: "Total de Entradas no Mês", Value: fmt.Sprintf("%d", entriesInMonth)},
	}
}

// recentTransactions as 5 transações mais recentes (entradas e saídas
// misturadas), ordenadas pelo momento de registro; cai para a data do
// lançamento quando o registro não tem created_at.
func recentTransactions(now time.Time, entries []*entity.Entry, outputs []*entity.Output, categories map[string]*entity.Category) []dto.TransactionDTO {
	type tx struct {
		description string
		amount      decimal.Decimal
		kind        string
		date        time.Time
		sortKey     time.Time
	}
	categoryName := func(id string) string {
		if cat := categories[id]; cat != nil && cat.Name != "" {
			return cat.Name
		}
		return "Outros"
	}

	all := make([]tx, 0, len(entries)+len(outputs))
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "Entrada - " + categoryName(e.CategoryID)
		}
		all = append(all, tx{
			description: desc,
			amount:      e.Value,
			kind:        "income",
			date:        e.Date,
			sortKey:     sortInstant(e.CreatedAt, e.Date),
		})
	}
	for _, o := range outputs {
		desc := o.Description
		if desc == "" {
			desc = "Saída - " + categoryName(o.CategoryID)
		}
		all = append(all, tx{
			description: desc,
			amount:      o.Value,
			kind:        "expense",
			date:        o.Date,
			sortKey:     sortInstant(o.CreatedAt, o.Date),
		})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].sortKey.After(all[j].sortKey)
	})
	if len(all) > 5 {
		all = all[:5]
	}

	out := make([]dto.TransactionDTO, 0, len(all))
	for i, t := range all {
		out = append(out, dto.TransactionDTO{
			ID:          i + 1,
			Description: t.description,
			Amount:      t.amount,
			Type:        t.kind,
			Date:        relativeDate(now, t.date),
		})
	}
	return out
}

func sortInstant(createdAt, date time.Time) time.Time {
	if !createdAt.IsZero() {
		return createdAt
	}
	return date
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// relativeDate "Hoje", "1 dia atrás", "N dias atrás" até 6 dias; depois a
// data absoluta em dd/mm/aaaa.
func relativeDate(now, date time.Time) string {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	days := int(nowDay.Sub(day).Hours() / 24)
	switch {
	case days <= 0:
		return "Hoje"
	case days == 1:
		return "1 dia atrás"
	case days < 7:
		return fmt.Sprintf("%d dias atrás", days)
	default:
		return date.Format("02/01/2006")
	}
}

// formatCurrency "R$ 5.000,00" no locale pt-BR.
func formatCurrency(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// formatPercent "84.0%" com uma casa decimal.
func formatPercent(v decimal.Decimal) string {
	f, _ := v.Float64()
	return fmt.Sprintf("%.1f%%", f)
}

// formatSignedPercent "+12.5%" / "-8.3%".
func formatSignedPercent(v decimal.Decimal) string {
	f, _ := v.Float64()
	return fmt.Sprintf("%+.1f%%", f)
}
