package handlers

import (
	"dunestore/internal/cart"
	"dunestore/internal/domain"
	applog "dunestore/internal/log"
	"dunestore/internal/schema"
	"dunestore/internal/services"
	"dunestore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Catalog     *services.CatalogService
	CartStorage cart.Storage
}

type addToCartBody struct {
	ProductID string         `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Options   domain.Options `json:"options"`
}

func (h *CartHandler) open(c *fiber.Ctx) *cart.Store {
	return cart.Open(h.CartStorage, ensureSID(c))
}

func cartJSON(s *cart.Store) fiber.Map {
	return fiber.Map{"items": s.Lines(), "total": s.Total(), "count": s.Count()}
}

// View returns the session's cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(cartJSON(h.open(c)))
}

// Add puts a product + options combination in the cart, validating the
// chosen options against the product's form schema first. Identical
// combinations merge into one line.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var body addToCartBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if body.ProductID == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing product_id")
	}

	p, err := h.Catalog.GetProduct(body.ProductID)
	if err != nil || !p.Active {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}

	sch, err := h.Catalog.ProductSchema(p)
	if err != nil {
		applog.Error(c, "cart.add.schema", err, map[string]any{"product": p.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not load product options")
	}
	opts := schema.Coerce(sch.Fields, body.Options)
	if res := schema.Validate(sch.Fields, opts, lang(c)); !res.Valid {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": res.Errors})
	}

	s := h.open(c)
	line := s.Add(cart.Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Options:   opts,
	}, validate.Qty(body.Quantity))
	applog.Info(c, "cart.add", map[string]any{"product": p.ID, "key": line.OptionsKey, "qty": line.Quantity})
	return c.JSON(cartJSON(s))
}

// Line keys travel in the body: they embed ":" and "|" and are not
// path-segment safe.
type updateQtyBody struct {
	OptionsKey string `json:"optionsKey"`
	Quantity   int    `json:"quantity"`
}

// UpdateQuantity sets a line's quantity; zero or less removes it.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var body updateQtyBody
	if err := c.BodyParser(&body); err != nil || body.OptionsKey == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing line key")
	}
	qty := body.Quantity
	if qty >= 1 {
		qty = validate.Qty(qty)
	}
	s := h.open(c)
	s.UpdateQuantity(body.OptionsKey, qty)
	return c.JSON(cartJSON(s))
}

type removeLineBody struct {
	OptionsKey string `json:"optionsKey"`
}

// Remove drops one line; unknown keys still answer with the cart.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var body removeLineBody
	if err := c.BodyParser(&body); err != nil || body.OptionsKey == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing line key")
	}
	s := h.open(c)
	s.Remove(body.OptionsKey)
	return c.JSON(cartJSON(s))
}

// Clear empties the cart entirely.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	s := h.open(c)
	s.Clear()
	return c.JSON(cartJSON(s))
}
