package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Zammmm09/StockMate/internal/application/chat"
	"github.com/Zammmm09/StockMate/internal/application/dto"
	"github.com/Zammmm09/StockMate/internal/domain"
	"github.com/Zammmm09/StockMate/pkg/logger"
)

// ChatReplier answers one assistant message for a shop ("" = anonymous).
type ChatReplier interface {
	Reply(ctx context.Context, shopID, message string) (string, error)
}

// RateLimiter counts one hit for key and reports whether it is within the limit.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ChatHandler serves the assistant endpoint (public, token optional).
type ChatHandler struct {
	uc      ChatReplier
	limiter RateLimiter
	log     *logger.Logger
}

// NewChatHandler builds the handler. limiter and log may be nil.
func NewChatHandler(uc ChatReplier, limiter RateLimiter, log *logger.Logger) *ChatHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ChatHandler{uc: uc, limiter: limiter, log: log}
}

// Send godoc
// @Summary      Send a message to the inventory assistant
// @Description  Works without a token (zero-data answers); with a valid token the
// @Description  reply is computed over the shop's inventory, warehouses and profile.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatRequest  true  "User message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ChatErrorResponse
// @Failure      429   {object}  dto.ChatErrorResponse
// @Failure      500   {object}  dto.ChatErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil || in.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ChatErrorResponse{Message: "Message is required"})
	}

	shopID := GetShopID(c)
	if h.limiter != nil {
		key := "chat:shop:" + shopID
		if shopID == "" {
			key = "chat:ip:" + c.IP()
		}
		ok, err := h.limiter.Allow(c.Context(), key)
		if err != nil {
			// fail open
			h.log.Warn().Err(err).Str("key", key).Msg("chat rate limiter unavailable")
		} else if !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ChatErrorResponse{Message: "Too many messages, please slow down"})
		}
	}

	reply, err := h.uc.Reply(c.Context(), shopID, in.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ChatErrorResponse{Message: "Message is required"})
		}
		h.log.Error().Err(err).Str("shop_id", shopID).Msg("chat reply failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChatErrorResponse{
			Message: "Error processing your request",
			Error:   errorText(err),
		})
	}
	return c.JSON(dto.ChatResponse{Success: true, Reply: reply})
}

// errorText strips the generic processing prefix so only the cause is returned.
func errorText(err error) string {
	msg := err.Error()
	prefix := chat.ErrProcessing.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
