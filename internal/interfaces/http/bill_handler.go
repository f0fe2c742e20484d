package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dhaliwal-pos/internal/application/billing"
	"github.com/jhoicas/dhaliwal-pos/internal/application/dto"
	"github.com/jhoicas/dhaliwal-pos/internal/application/pos"
)

// BillHandler cuenta, datos del cliente y recibo de la sesión actual.
type BillHandler struct {
	bill    *pos.BillUseCase
	receipt *billing.ReceiptUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(bill *pos.BillUseCase, receipt *billing.ReceiptUseCase) *BillHandler {
	return &BillHandler{bill: bill, receipt: receipt}
}

func (h *BillHandler) respond(c *fiber.Ctx, out *dto.BillResponse) error {
	out.ReceiptAvailable = h.receipt.Available()
	return c.JSON(out)
}

// Get godoc
// @Summary      Cuenta actual
// @Tags         bill
// @Produce      json
// @Success      200  {object}  dto.BillResponse
// @Router       /api/bill [get]
func (h *BillHandler) Get(c *fiber.Ctx) error {
	return h.respond(c, h.bill.GetBill(GetSession(c)))
}

// AddItem godoc
// @Summary      Agregar porción a la cuenta
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "item y size (Half | Full)"
// @Success      200   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/bill/items [post]
func (h *BillHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.bill.AddItem(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, out)
}

// UpdateCustomer godoc
// @Summary      Datos del cliente
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "name, phone, address"
// @Success      200   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bill/customer [put]
func (h *BillHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.respond(c, h.bill.UpdateCustomer(GetSession(c), in))
}

// Clear godoc
// @Summary      Limpiar cuenta y cliente
// @Tags         bill
// @Produce      json
// @Success      200  {object}  dto.BillResponse
// @Router       /api/bill [delete]
func (h *BillHandler) Clear(c *fiber.Ctx) error {
	return h.respond(c, h.bill.Clear(GetSession(c)))
}

// Receipt godoc
// @Summary      Descargar recibo PDF (80x200 mm)
// @Tags         bill
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/bill/receipt.pdf [get]
func (h *BillHandler) Receipt(c *fiber.Ctx) error {
	pdf, filename, err := h.receipt.DownloadReceipt(c.UserContext(), GetSession(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
