package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/application/usecase"
)

// ProviderHandler maneja las peticiones HTTP de proveedores.
type ProviderHandler struct {
	uc *usecase.ProviderUseCase
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// Create POST /providers
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	provider, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(provider)
}

// List GET /providers?cif=&limit=20&offset=0
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Query("cif"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /providers/:id
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	provider, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(provider)
}

// providerAllowedUpdates allow-list de PATCH: el CIF no se puede cambiar.
var providerAllowedUpdates = []string{"name", "address", "email", "phone"}

// Update PATCH /providers/:id
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	if !onlyAllowedFields(c.Body(), providerAllowedUpdates...) {
		return invalidUpdates(c)
	}
	var in dto.UpdateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	provider, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(provider)
}

// UpdateByCIF PATCH /providers?cif=
func (h *ProviderHandler) UpdateByCIF(c *fiber.Ctx) error {
	cif := c.Query("cif")
	if cif == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param cif requerido"})
	}
	if !onlyAllowedFields(c.Body(), providerAllowedUpdates...) {
		return invalidUpdates(c)
	}
	var in dto.UpdateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	provider, err := h.uc.UpdateByCIF(cif, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(provider)
}

// Delete DELETE /providers/:id
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// DeleteByCIF DELETE /providers?cif=
func (h *ProviderHandler) DeleteByCIF(c *fiber.Ctx) error {
	cif := c.Query("cif")
	if cif == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param cif requerido"})
	}
	if err := h.uc.DeleteByCIF(cif); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
