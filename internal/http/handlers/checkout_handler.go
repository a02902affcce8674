package handlers

import (
	"errors"

	"dunestore/internal/cart"
	"dunestore/internal/checkout"
	"dunestore/internal/i18n"
	applog "dunestore/internal/log"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Flow        *checkout.Flow
	CartStorage cart.Storage
}

// Submit validates the delivery form and places the order from the
// session's cart. The cart survives any failure so the shopper can
// retry; a success clears it and returns the order id.
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	var form checkout.DeliveryForm
	if err := c.BodyParser(&form); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	ln := lang(c)
	sid := ensureSID(c)
	store := cart.Open(h.CartStorage, sid)

	orderID, err := h.Flow.Submit(c.Context(), sid, store, form, ln)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": verr.Fields})
		case errors.Is(err, checkout.ErrCartEmpty):
			return jsonError(c, fiber.StatusBadRequest, i18n.T(ln, "cart_empty"))
		case errors.Is(err, checkout.ErrSubmitInFlight):
			return jsonError(c, fiber.StatusConflict, i18n.T(ln, "submit_in_progress"))
		case checkout.IsNetworkError(err):
			applog.Error(c, "checkout.network", err, nil)
			return jsonError(c, fiber.StatusBadGateway, i18n.T(ln, "network_error"))
		default:
			applog.Error(c, "checkout.fail", err, nil)
			return jsonError(c, fiber.StatusBadGateway, i18n.T(ln, "order_failed"))
		}
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})
	return c.JSON(fiber.Map{"success": true, "orderId": orderID})
}
