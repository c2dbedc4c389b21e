package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/analytics"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/infrastructure/pdf"
)

// DashboardHandler trata as requisições HTTP do dashboard (protegido).
type DashboardHandler struct {
	uc     *analytics.DashboardUseCase
	report *pdf.MonthlyReportGenerator
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, report *pdf.MonthlyReportGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetDashboard godoc
// @Summary      Dados do dashboard
// @Description  Métricas do mês, série de faturamento de 6 meses, quebra de
//
//	despesas por categoria, KPIs e transações recentes.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDataDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.uc.GetDashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(data)
}

// GetMonthlyReport godoc
// @Summary      Relatório financeiro mensal em PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) GetMonthlyReport(c *fiber.Ctx) error {
	snap, err := h.uc.LoadSnapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	summary := analytics.BuildMonthlySummary(time.Now(), *snap)
	doc, err := h.report.Generate(summary)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-mensal.pdf"`)
	return c.Send(doc)
}
