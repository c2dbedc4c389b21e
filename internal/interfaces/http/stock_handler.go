package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/application/stock"
	"github.com/seu-usuario/choperia-api/internal/domain/filter"
)

// StockHandler trata as requisições HTTP de lotes de estoque (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Criar lote de estoque
// @Description  Cria um lote ativo com quantidade inicial = litragem x unidades.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "product_name, category, entry_date, expiry_date, unit_liters, unit_count, unit_price, observations"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	lot, err := h.uc.CreateLot(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// RegisterExit godoc
// @Summary      Registrar saída de estoque
// @Description  Debita litros do lote e grava o movimento no log. O lote é
//
//	encerrado automaticamente quando o disponível chega a zero.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID do lote"
// @Param        body  body  dto.RegisterExitRequest  true  "quantity (litros), reason (evento|perda|consumo_interno)"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/exits [post]
func (h *StockHandler) RegisterExit(c *fiber.Ctx) error {
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	lot, err := h.uc.RegisterExit(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lot)
}

// List godoc
// @Summary      Listar lotes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_name  query  string  false  "busca livre no nome do produto"
// @Param        category      query  string  false  "Pilsen | IPA | Weiss | Porter | Lager"
// @Param        status        query  string  false  "ativo | encerrado"
// @Param        expiry_date   query  string  false  "vence até yyyy-mm-dd (inclusivo)"
// @Success      200  {object}  dto.ListResponse[dto.StockItemResponse]
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	f := filter.StockFilter{
		ProductName: c.Query("product_name"),
		Category:    c.Query("category"),
		Status:      c.Query("status"),
		ExpiryDate:  c.Query("expiry_date"),
	}
	lots, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.StockItemResponse]{Total: len(lots), Items: lots})
}

// GetByID godoc
// @Summary      Obter lote com log de movimentos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do lote"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	lot, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lot)
}

// Update godoc
// @Summary      Editar metadados do lote
// @Description  Atualiza campos descritivos. Litragem, unidades e
//
//	quantidades derivadas são imutáveis após a criação.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID do lote"
// @Param        body  body  dto.UpdateStockItemRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	lot, err := h.uc.EditMetadata(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lot)
}

// Delete godoc
// @Summary      Remover lote
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID do lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
