package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/application/usecase"
)

// ShopHandler serves the authenticated shop's profile.
type ShopHandler struct {
	uc       *usecase.ShopUseCase
	validate *validator.Validate
}

// NewShopHandler builds the handler.
func NewShopHandler(uc *usecase.ShopUseCase, v *validator.Validate) *ShopHandler {
	return &ShopHandler{uc: uc, validate: v}
}

// Profile godoc
// @Summary      Shop profile
// @Tags         shop
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShopResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shop/profile [get]
func (h *ShopHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), GetShopID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Update shop profile
// @Tags         shop
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateShopRequest  true  "Fields to change"
// @Success      200   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shop/profile [put]
func (h *ShopHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if stop, err := validate(c, h.validate, in); stop {
		return err
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetShopID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
