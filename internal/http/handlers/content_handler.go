package handlers

import (
	"encoding/json"

	"dunestore/internal/domain"
	applog "dunestore/internal/log"
	"dunestore/internal/repos"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ContentHandler serves the page-composition surfaces: banners and
// key/value site-settings blobs.
type ContentHandler struct {
	Banners  *repos.BannerRepo
	Settings *repos.SettingsRepo
}

func (h *ContentHandler) ListBanners(c *fiber.Ctx) error {
	banners, err := h.Banners.ListActive()
	if err != nil {
		applog.Error(c, "content.banners", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load banners")
	}
	return c.JSON(fiber.Map{"banners": banners})
}

func (h *ContentHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	s, err := h.Settings.Get(key)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "setting not found")
	}
	// Value is stored as JSON; pass it through untouched.
	return c.JSON(fiber.Map{"key": s.Key, "value": json.RawMessage(s.Value)})
}

// ---- admin ----

func (h *ContentHandler) AdminListBanners(c *fiber.Ctx) error {
	banners, err := h.Banners.ListAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load banners")
	}
	return c.JSON(fiber.Map{"banners": banners})
}

func (h *ContentHandler) SaveBanner(c *fiber.Ctx) error {
	var b domain.Banner
	if err := c.BodyParser(&b); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if b.Image == "" {
		return jsonError(c, fiber.StatusBadRequest, "missing image")
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
		if err := h.Banners.Create(b); err != nil {
			applog.Error(c, "admin.banner.create", err, nil)
			return jsonError(c, fiber.StatusBadRequest, "could not save banner")
		}
	} else if err := h.Banners.Update(b); err != nil {
		applog.Error(c, "admin.banner.update", err, map[string]any{"banner": b.ID})
		return jsonError(c, fiber.StatusBadRequest, "could not save banner")
	}
	applog.Audit(c, "admin.banner.save", map[string]any{"banner": b.ID})
	return c.JSON(fiber.Map{"banner": b})
}

func (h *ContentHandler) DeleteBanner(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Banners.Delete(id); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "could not delete banner")
	}
	applog.Audit(c, "admin.banner.delete", map[string]any{"banner": id})
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) AdminListSettings(c *fiber.Ctx) error {
	settings, err := h.Settings.List()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "could not load settings")
	}
	return c.JSON(fiber.Map{"settings": settings})
}

type saveSettingBody struct {
	Value json.RawMessage `json:"value"`
}

func (h *ContentHandler) SaveSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	var body saveSettingBody
	if err := c.BodyParser(&body); err != nil || len(body.Value) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if !json.Valid(body.Value) {
		return jsonError(c, fiber.StatusBadRequest, "value must be JSON")
	}
	if err := h.Settings.Upsert(key, string(body.Value)); err != nil {
		applog.Error(c, "admin.setting.save", err, map[string]any{"key": key})
		return jsonError(c, fiber.StatusBadRequest, "could not save setting")
	}
	applog.Audit(c, "admin.setting.save", map[string]any{"key": key})
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContentHandler) DeleteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	if err := h.Settings.Delete(key); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "could not delete setting")
	}
	applog.Audit(c, "admin.setting.delete", map[string]any{"key": key})
	return c.JSON(fiber.Map{"success": true})
}
