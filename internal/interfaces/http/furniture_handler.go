package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/application/usecase"
	"github.com/tu-usuario/muebleria-api/internal/domain/repository"
)

// FurnitureHandler maneja las peticiones HTTP del catálogo de muebles.
type FurnitureHandler struct {
	uc *usecase.FurnitureUseCase
}

// NewFurnitureHandler construye el handler.
func NewFurnitureHandler(uc *usecase.FurnitureUseCase) *FurnitureHandler {
	return &FurnitureHandler{uc: uc}
}

// Create POST /furnitures
func (h *FurnitureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFurnitureRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	furniture, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(furniture)
}

// List GET /furnitures?name=&description=&color=&limit=20&offset=0
func (h *FurnitureHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	filter := repository.FurnitureFilter{
		Name:        c.Query("name"),
		Description: c.Query("description"),
		Color:       c.Query("color"),
	}
	list, err := h.uc.List(filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /furnitures/:id
func (h *FurnitureHandler) GetByID(c *fiber.Ctx) error {
	furniture, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(furniture)
}

// furnitureAllowedUpdates allow-list de PATCH: el stock solo cambia vía transacciones.
var furnitureAllowedUpdates = []string{"type", "name", "description", "color", "dimensions", "price"}

// Update PATCH /furnitures/:id
func (h *FurnitureHandler) Update(c *fiber.Ctx) error {
	if !onlyAllowedFields(c.Body(), furnitureAllowedUpdates...) {
		return invalidUpdates(c)
	}
	var in dto.UpdateFurnitureRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	furniture, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(furniture)
}

// UpdateByName PATCH /furnitures?name=
func (h *FurnitureHandler) UpdateByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param name requerido"})
	}
	if !onlyAllowedFields(c.Body(), furnitureAllowedUpdates...) {
		return invalidUpdates(c)
	}
	var in dto.UpdateFurnitureRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	furniture, err := h.uc.UpdateByName(name, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(furniture)
}

// Delete DELETE /furnitures/:id
func (h *FurnitureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// DeleteByName DELETE /furnitures?name=
func (h *FurnitureHandler) DeleteByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param name requerido"})
	}
	if err := h.uc.DeleteByName(name); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
