package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
)

// EntryHandler trata as requisições HTTP de entradas (protegido).
type EntryHandler struct {
	uc *usecase.EntryUseCase
}

// NewEntryHandler constrói o handler.
func NewEntryHandler(uc *usecase.EntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar entrada
// @Description  Cria um registro de receita. Linhas de beer control aplicam
//
//	consumo nos lotes referenciados na mesma transação; estoque
//	insuficiente em qualquer lote desfaz tudo.
//
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "date, category_id, event_id, event_type, payment_method, value, beer_control"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	entry, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// List godoc
// @Summary      Listar entradas
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        start_date      query  string  false  "yyyy-mm-dd (inclusivo)"
// @Param        end_date        query  string  false  "yyyy-mm-dd (inclusivo)"
// @Param        category_id     query  string  false  "ID da categoria"
// @Param        event           query  string  false  "busca livre no nome do evento"
// @Param        event_type      query  string  false  "fechado | avulso"
// @Param        payment_method  query  string  false  "dinheiro | pix | cartao_credito | cartao_debito"
// @Success      200  {object}  dto.ListResponse[dto.EntryResponse]
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	f := filter.EntryFilter{
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
		CategoryID:    c.Query("category_id"),
		Event:         c.Query("event"),
		EventType:     c.Query("event_type"),
		PaymentMethod: c.Query("payment_method"),
	}
	entries, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.EntryResponse]{Total: len(entries), Items: entries})
}

// GetByID godoc
// @Summary      Obter entrada
// @Tags         entries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da entrada"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [get]
func (h *EntryHandler) GetByID(c *fiber.Ctx) error {
	entry, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// Update godoc
// @Summary      Atualizar entrada
// @Description  Atualiza campos da entrada. Beer control não é reprocessado.
// @Tags         entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID da entrada"
// @Param        body  body  dto.UpdateEntryRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.EntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	entry, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// Delete godoc
// @Summary      Remover entrada
// @Description  Remove a entrada e suas linhas de beer control. O consumo
//
//	já aplicado nos lotes não é revertido.
//
// @Tags         entries
// @Security     Bearer
// @Param        id  path  string  true  "ID da entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
