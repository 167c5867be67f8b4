package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/application/inventory"
	"github.com/Zammmm09/StockMate/internal/domain"
)

// InventoryHandler handles inventory item requests (protected).
type InventoryHandler struct {
	items         *inventory.ItemUseCase
	reports       *inventory.ReportUseCase
	replenishment *inventory.ReplenishmentUseCase
	validate      *validator.Validate
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(
	items *inventory.ItemUseCase,
	reports *inventory.ReportUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	v *validator.Validate,
) *InventoryHandler {
	return &InventoryHandler{items: items, reports: reports, replenishment: replenishment, validate: v}
}

// Create godoc
// @Summary      Add an inventory item
// @Description  The SKU is stored upper-case and must be unique per shop; the quantity must fit in the warehouse.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Item data"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	if shopID == "" {
		return unauthorized(c)
	}
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if stop, err := validate(c, h.validate, in); stop {
		return err
	}
	if in.Price.IsNegative() {
		return writeError(c, fmt.Errorf("%w: price must be 0 or greater", domain.ErrInvalidInput))
	}
	out, err := h.items.Create(c.Context(), shopID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List inventory items
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.items.List(c.Context(), GetShopID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByWarehouse godoc
// @Summary      Inventory grouped by warehouse
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseInventoryGroup
// @Router       /api/inventory/by-warehouse [get]
func (h *InventoryHandler) ByWarehouse(c *fiber.Ctx) error {
	out, err := h.items.ByWarehouse(c.Context(), GetShopID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an inventory item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "Item ID"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Fields to change"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if stop, err := validate(c, h.validate, in); stop {
		return err
	}
	out, err := h.items.Update(c.Context(), GetShopID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantities godoc
// @Summary      Bulk quantity update
// @Description  Unknown ids are skipped; the whole batch fails if any warehouse would overflow.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkQuantityRequest  true  "Quantity changes"
// @Success      200   {object}  dto.BulkQuantityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/update-quantities [patch]
func (h *InventoryHandler) UpdateQuantities(c *fiber.Ctx) error {
	var in dto.BulkQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if stop, err := validate(c, h.validate, in); stop {
		return err
	}
	updated, err := h.items.UpdateQuantities(c.Context(), GetShopID(c), in.Updates)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.BulkQuantityResponse{Message: "Quantities updated successfully", UpdatedItems: updated})
}

// Delete godoc
// @Summary      Delete an inventory item
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Item ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Context(), GetShopID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Item removed"})
}

// ReportPDF godoc
// @Summary      Download the inventory report
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/report.pdf [get]
func (h *InventoryHandler) ReportPDF(c *fiber.Ctx) error {
	doc, filename, err := h.reports.GeneratePDF(c.Context(), GetShopID(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}

// ReorderSuggestions godoc
// @Summary      Reorder suggestions
// @Description  Items under 50 units with safety stock, reorder point and suggested order quantity,
// @Description  most urgent first.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReorderSuggestion
// @Router       /api/inventory/reorder-suggestions [get]
func (h *InventoryHandler) ReorderSuggestions(c *fiber.Ctx) error {
	out, err := h.replenishment.Suggestions(c.Context(), GetShopID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
