package handlers

import (
	"strings"

	"dunestore/internal/domain"
	applog "dunestore/internal/log"
	"dunestore/internal/repos"
	"dunestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler implements the order-creation endpoint contract: POST
// accepts an order snapshot, GET serves one order back for admin view.
type OrderHandler struct {
	Order *services.OrderService
	Repo  *repos.OrderRepo
}

// Create writes the posted order snapshot. Item rows are best-effort;
// the order id is returned as long as the header was written.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req domain.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing customer fields"})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty order"})
	}

	orderID, err := h.Order.Place(c.Context(), req)
	if err != nil {
		applog.Error(c, "order.create", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "order creation failed",
			"details": err.Error(),
		})
	}
	applog.Audit(c, "order.create", map[string]any{"order_id": orderID, "total": req.TotalPrice})
	return c.JSON(fiber.Map{"success": true, "orderId": orderID})
}

// Get returns one order with its items (admin view).
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	o, items, err := h.Repo.Get(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}
	return c.JSON(fiber.Map{"order": o, "items": items})
}
