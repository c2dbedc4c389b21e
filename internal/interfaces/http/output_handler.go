package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
)

// OutputHandler trata as requisições HTTP de saídas (protegido).
type OutputHandler struct {
	uc *usecase.OutputUseCase
}

// NewOutputHandler constrói o handler.
func NewOutputHandler(uc *usecase.OutputUseCase) *OutputHandler {
	return &OutputHandler{uc: uc}
}

// Create godoc
// @Summary      Criar saída
// @Tags         outputs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutputRequest  true  "date, category_id, event_id, payment_method, value, description"
// @Success      201   {object}  dto.OutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/outputs [post]
func (h *OutputHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	output, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(output)
}

// List godoc
// @Summary      Listar saídas
// @Tags         outputs
// @Security     Bearer
// @Produce      json
// @Param        start_date      query  string  false  "yyyy-mm-dd (inclusivo)"
// @Param        end_date        query  string  false  "yyyy-mm-dd (inclusivo)"
// @Param        category_id     query  string  false  "ID da categoria"
// @Param        payment_method  query  string  false  "dinheiro | pix | cartao_credito | cartao_debito"
// @Param        event_id        query  string  false  "ID do evento"
// @Success      200  {object}  dto.ListResponse[dto.OutputResponse]
// @Router       /api/outputs [get]
func (h *OutputHandler) List(c *fiber.Ctx) error {
	f := filter.OutputFilter{
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
		CategoryID:    c.Query("category_id"),
		PaymentMethod: c.Query("payment_method"),
		EventID:       c.Query("event_id"),
	}
	outputs, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.OutputResponse]{Total: len(outputs), Items: outputs})
}

// GetByID godoc
// @Summary      Obter saída
// @Tags         outputs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da saída"
// @Success      200  {object}  dto.OutputResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [get]
func (h *OutputHandler) GetByID(c *fiber.Ctx) error {
	output, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(output)
}

// Update godoc
// @Summary      Atualizar saída
// @Tags         outputs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID da saída"
// @Param        body  body  dto.UpdateOutputRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.OutputResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [put]
func (h *OutputHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	output, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(output)
}

// Delete godoc
// @Summary      Remover saída
// @Tags         outputs
// @Security     Bearer
// @Param        id  path  string  true  "ID da saída"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outputs/{id} [delete]
func (h *OutputHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
