package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/application/transaction"
)

// TransactionHandler maneja las peticiones HTTP del libro de transacciones.
type TransactionHandler struct {
	uc  *transaction.UseCase
	pdf *transaction.PDFUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *transaction.UseCase, pdf *transaction.PDFUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc, pdf: pdf}
}

// Create POST /transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	trans, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trans)
}

// List GET /transactions?startDate=&endDate=&type=&nif=&cif=&limit=20&offset=0
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), q, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /transactions/:id
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	trans, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trans)
}

// GetPDF GET /transactions/:id/pdf devuelve el justificante en PDF.
func (h *TransactionHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.pdf.ReceiptPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=transaccion_%s.pdf", id))
	return c.Send(doc)
}

// transactionAllowedUpdates allow-list de PATCH: entidad, tipo y fecha son inmutables.
var transactionAllowedUpdates = []string{"furniture", "observations"}

// Update PATCH /transactions/:id
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	if !onlyAllowedFields(c.Body(), transactionAllowedUpdates...) {
		return invalidUpdates(c)
	}
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	trans, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trans)
}

// Delete DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
