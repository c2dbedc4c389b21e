package analytics

import (
	"fmt"
	"time"

	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/domain/repository"
)

// DashboardUseCase carrega o snapshot e monta o dashboard. As quatro fontes
// são buscadas em paralelo; qualquer falha derruba a resposta inteira (sem
// dashboard parcial).
type DashboardUseCase struct {
	entryRepo    repository.EntryRepository
	outputRepo   repository.OutputRepository
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	entryRepo repository.EntryRepository,
	outputRepo repository.OutputRepository,
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		entryRepo:    entryRepo,
		outputRepo:   outputRepo,
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
	}
}

// GetDashboard monta o dashboard com "agora" = time.Now().
func (uc *DashboardUseCase) GetDashboard() (*dto.DashboardDataDTO, error) {
	snap, err := uc.LoadSnapshot()
	if err != nil {
		return nil, err
	}
	return BuildDashboard(time.Now(), *snap), nil
}

// LoadSnapshot busca entradas, saídas, eventos e categorias em paralelo.
func (uc *DashboardUseCase) LoadSnapshot() (*Snapshot, error) {
	var snap Snapshot
	errCh := make(chan error, 4)

	go func() {
		entries, err := uc.entryRepo.ListAll()
		if err != nil {
			errCh <- fmt.Errorf("dashboard: carregando entradas: %w", err)
			return
		}
		snap.Entries = entries
		errCh <- nil
	}()
	go func() {
		outputs, err := uc.outputRepo.ListAll()
		if err != nil {
			errCh <- fmt.Errorf("dashboard: carregando saídas: %w", err)
			return
		}
		snap.Outputs = outputs
		errCh <- nil
	}()
	go func() {
		events, err := uc.eventRepo.ListAll()
		if err != nil {
			errCh <- fmt.Errorf("dashboard: carregando eventos: %w", err)
			return
		}
		snap.Events = events
		errCh <- nil
	}()
	go func() {
		categories, err := uc.categoryRepo.ListAll()
		if err != nil {
			errCh <- fmt.Errorf("dashboard: carregando categorias: %w", err)
			return
		}
		snap.Categories = categories
		errCh <- nil
	}()

	var firstErr error
	for i := 0; i < 4; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return &snap, nil
}

// MonthlySummary resumo financeiro de um mês, usado pelo relatório em PDF.
type MonthlySummary struct {
	Month    string
	Revenue  string
	Expenses string
	Profit   string
	Margin   string
	Balance  string
	Expense  []dto.ExpenseByCategoryDTO
	Entries  int
	Events   int
}

// BuildMonthlySummary deriva o resumo do mês corrente do snapshot, com os
// valores já formatados em pt-BR.
func BuildMonthlySummary(now time.Time, snap Snapshot) *MonthlySummary {
	data := BuildDashboard(now, snap)
	summary := &MonthlySummary{
		Month:   fmt.Sprintf("%s de %d", monthNames[now.Month()-1], now.Year()),
		Expense: data.ExpensesByCategory,
	}
	for _, m := range data.Metrics {
		switch m.Title {
		case "Faturamento do Mês":
			summary.Revenue = m.Value
		case "Total de Despesas":
			summary.Expenses = m.Value
		case "Lucro Líquido":
			summary.Profit = m.Value
		case "Margem de Lucro":
			summary.Margin = m.Value
		case "Saldo em Caixa":
			summary.Balance = m.Value
		}
	}
	year, month := now.Year(), now.Month()
	for _, e := range snap.Entries {
		if sameMonth(e.Date, year, month) {
			summary.Entries++
		}
	}
	for _, ev := range snap.Events {
		if sameMonth(ev.Date, year, month) {
			summary.Events++
		}
	}
	return summary
}
