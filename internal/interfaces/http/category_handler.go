package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/dto"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
)

// CategoryHandler trata as requisições HTTP de categorias (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, type (ENTRY|OUTPUT), color, allows_single_event, description"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cat, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// List godoc
// @Summary      Listar categorias
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "ENTRY | OUTPUT"
// @Param        active  query  bool    false  "só ativas"
// @Success      200  {object}  dto.ListResponse[dto.CategoryResponse]
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	onlyActive := c.QueryBool("active", false)
	cats, err := h.uc.List(c.Query("type"), onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.CategoryResponse]{Total: len(cats), Items: cats})
}

// GetByID godoc
// @Summary      Obter categoria
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	cat, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

// Update godoc
// @Summary      Atualizar categoria
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID da categoria"
// @Param        body  body  dto.UpdateCategoryRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cat, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

// ToggleStatus godoc
// @Summary      Alternar ativo/inativo
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/status [patch]
func (h *CategoryHandler) ToggleStatus(c *fiber.Ctx) error {
	cat, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cat)
}

// Delete godoc
// @Summary      Remover categoria
// @Tags         categories
// @Security     Bearer
// @Param        id  path  string  true  "ID da categoria"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
