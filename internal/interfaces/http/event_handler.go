package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
)

// EventHandler trata as requisições HTTP de eventos (protegido).
type EventHandler struct {
	uc *usecase.EventUseCase
}

// NewEventHandler constrói o handler.
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Create godoc
// @Summary      Criar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "name, date (yyyy-mm-dd), type (fechado|avulso), observations"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	event, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// List godoc
// @Summary      Listar eventos com receita total
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.EventResponse]
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.EventResponse]{Total: len(events), Items: events})
}

// GetByID godoc
// @Summary      Obter evento
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	event, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// Update godoc
// @Summary      Atualizar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do evento"
// @Param        body  body  dto.UpdateEventRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	event, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

// Delete godoc
// @Summary      Remover evento
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID do evento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
