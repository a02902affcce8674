package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"dunestore/internal/config"
	"dunestore/internal/http/handlers"
	"dunestore/internal/repos"
	"dunestore/internal/retry"
)

// newTestApp wires the full handler graph over a seeded in-memory
// store, with retry backoff zeroed so failure paths run fast.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{
		JWTSecret:     "test-secret",
		MediaDir:      t.TempDir(),
		AdminEmail:    "admin@dunestore.test",
		AdminPassword: "Passw0rd!",
	}
	if err := repos.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		t.Fatal(err)
	}

	deps := handlers.NewDeps(db, cfg)
	deps.CheckoutHandler.Flow.Backoff = retry.Linear(0)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api/v1")
	api.Get("/categories", deps.CatalogHandler.Tree)
	api.Get("/categories/flat", deps.CatalogHandler.Flat)
	api.Get("/products", deps.CatalogHandler.Products)
	api.Get("/products/:id", deps.CatalogHandler.Detail)
	api.Get("/search", deps.CatalogHandler.Search)
	api.Get("/banners", deps.ContentHandler.ListBanners)
	api.Get("/settings/:key", deps.ContentHandler.GetSetting)

	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Patch("/cart/line", deps.CartHandler.UpdateQuantity)
	api.Delete("/cart/line", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)

	api.Post("/checkout", deps.CheckoutHandler.Submit)
	api.Post("/orders", deps.OrderHandler.Create)
	api.Post("/admin/login", deps.AuthHandler.Login)

	admin := api.Group("/admin", handlers.RequireAdmin(deps.Auth))
	admin.Get("/orders", deps.AdminHandler.ListOrders)
	admin.Post("/categories", deps.AdminHandler.SaveCategory)
	admin.Put("/settings/:key", deps.ContentHandler.SaveSetting)
	admin.Delete("/settings/:key", deps.ContentHandler.DeleteSetting)

	return app, db
}

// jsonReq builds a JSON request carrying the session cookie.
func jsonReq(method, target, sid string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
