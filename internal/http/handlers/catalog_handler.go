package handlers

import (
	"dunestore/internal/catalog"
	applog "dunestore/internal/log"
	"dunestore/internal/services"
	"dunestore/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

type categoryNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	NameFr   string         `json:"name_fr"`
	Image    string         `json:"image,omitempty"`
	Children []categoryNode `json:"children"`
}

func toNodes(nodes []*catalog.Node) []categoryNode {
	out := make([]categoryNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, categoryNode{
			ID:       n.Category.ID,
			Name:     n.Category.Name,
			NameFr:   n.Category.NameFr,
			Image:    n.Category.Image,
			Children: toNodes(n.Children),
		})
	}
	return out
}

// Tree returns the nested category hierarchy for storefront menus.
func (h *CatalogHandler) Tree(c *fiber.Ctx) error {
	f, err := h.Catalog.Forest()
	if err != nil {
		applog.Error(c, "catalog.tree", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	if len(f.Issues) > 0 {
		applog.Error(c, "catalog.tree.integrity", nil, map[string]any{"issues": f.Issues})
	}
	return c.JSON(fiber.Map{"categories": toNodes(f.Roots)})
}

// Flat returns the pre-order indented list for parent pickers.
func (h *CatalogHandler) Flat(c *fiber.Ctx) error {
	f, err := h.Catalog.Forest()
	if err != nil {
		applog.Error(c, "catalog.flat", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": f.FlattenIndented()})
}

// Products lists active products, optionally scoped to a category name
// and its whole subtree via ?category=.
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	name := c.Query("category")
	products, err := h.Catalog.ProductsInCategory(name)
	if err != nil {
		applog.Error(c, "catalog.products", err, map[string]any{"category": name})
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

// Detail returns one product with the form schema it inherits.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil || p.ID == "" || !p.Active {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	sch, err := h.Catalog.ProductSchema(p)
	if err != nil {
		applog.Error(c, "catalog.schema", err, map[string]any{"product": id})
		// A broken schema blob should not hide the product.
		sch.Fields = nil
	}
	return c.JSON(fiber.Map{"product": p, "fields": sch.Fields})
}

func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return c.JSON(fiber.Map{"products": []any{}, "count": 0})
	}
	products, err := h.Catalog.Search(q, 20)
	if err != nil {
		applog.Error(c, "catalog.search", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load results")
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}
