package handlers

import (
	"bytes"

	"dunestore/internal/domain"
	applog "dunestore/internal/log"
	"dunestore/internal/media"
	"dunestore/internal/repos"
	"dunestore/internal/services"
	"dunestore/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	Cats     *repos.CategoryRepo
	Prods    *repos.ProductRepo
	Orders   *repos.OrderRepo
	Banners  *repos.BannerRepo
	Settings *repos.SettingsRepo
	Export   *services.ExportService
	MediaDir string
}

// ---- products ----

func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Prods.ListAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Name(p.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product name")
	}
	if p.Price < 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid price")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
		p.Active = true
		if err := h.Prods.Create(p); err != nil {
			applog.Error(c, "admin.product.create", err, nil)
			return jsonError(c, fiber.StatusBadRequest, "could not save product")
		}
	} else if err := h.Prods.Update(p); err != nil {
		applog.Error(c, "admin.product.update", err, map[string]any{"product": p.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not save product")
	}
	applog.Audit(c, "admin.product.save", map[string]any{"product": p.ID})
	return c.JSON(fiber.Map{"product": p})
}

func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Prods.Delete(id); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "could not delete product")
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	return c.JSON(fiber.Map{"success": true})
}

// ---- categories / product types ----

type saveCategoryBody struct {
	domain.Category
	FieldsJSON string `json:"fields_json"`
}

func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.Cats.List()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(fiber.Map{"categories": cats})
}

// SaveCategory creates or updates a category, including its embedded
// form schema. The schema blob must parse before it is accepted.
func (h *AdminHandler) SaveCategory(c *fiber.Ctx) error {
	var body saveCategoryBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	cat := body.Category
	cat.FieldsJSON = body.FieldsJSON
	if _, ok := validate.Name(cat.Name); !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid category name")
	}
	if _, err := domain.ParseFormSchema(cat.FieldsJSON); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid form schema")
	}
	if cat.ParentID != nil && *cat.ParentID == cat.ID {
		return jsonError(c, fiber.StatusBadRequest, "category cannot be its own parent")
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
		if err := h.Cats.Create(cat); err != nil {
			applog.Error(c, "admin.category.create", err, nil)
			return jsonError(c, fiber.StatusBadRequest, "could not save category")
		}
	} else if err := h.Cats.Update(cat); err != nil {
		applog.Error(c, "admin.category.update", err, map[string]any{"category": cat.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not save category")
	}
	applog.Audit(c, "admin.category.save", map[string]any{"category": cat.ID})
	return c.JSON(fiber.Map{"category": cat})
}

// DeleteCategory removes a category and, recursively, its children.
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := h.Cats.DeleteCascade(id); err != nil {
		applog.Error(c, "admin.category.delete", err, map[string]any{"category": id})
		return jsonError(c, fiber.StatusBadRequest, "could not delete category")
	}
	applog.Audit(c, "admin.category.delete", map[string]any{"category": id})
	return c.JSON(fiber.Map{"success": true})
}

// ---- orders ----

func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.Orders.ListLatest(100)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load orders")
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing status")
	}
	if err := h.Orders.UpdateStatus(id, body.Status); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "could not update status")
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order_id": id, "status": body.Status})
	return c.JSON(fiber.Map{"success": true})
}

// ---- exports ----

func (h *AdminHandler) ExportOrders(c *fiber.Ctx) error {
	f, err := h.Export.OrdersWorkbook()
	if err != nil {
		applog.Error(c, "admin.export.orders", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not export orders")
	}
	return sendWorkbook(c, f.WriteToBuffer, "orders.xlsx")
}

func (h *AdminHandler) ExportProducts(c *fiber.Ctx) error {
	f, err := h.Export.ProductsWorkbook()
	if err != nil {
		applog.Error(c, "admin.export.products", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not export products")
	}
	return sendWorkbook(c, f.WriteToBuffer, "products.xlsx")
}

func sendWorkbook(c *fiber.Ctx, write func() (*bytes.Buffer, error), filename string) error {
	buf, err := write()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not render workbook")
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// ---- uploads ----

func (h *AdminHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "missing image file")
	}
	file, err := header.Open()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "could not read upload")
	}
	defer file.Close()

	name, err := media.SaveImage(file, header, h.MediaDir)
	if err != nil {
		applog.Error(c, "admin.upload", err, nil)
		return jsonError(c, fiber.StatusBadRequest, "could not save image")
	}
	applog.Audit(c, "admin.upload", map[string]any{"file": name})
	return c.JSON(fiber.Map{"file": name, "url": "/media/" + name})
}
