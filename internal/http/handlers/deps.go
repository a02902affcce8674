package handlers

import (
	"dunestore/internal/checkout"
	"dunestore/internal/config"
	"dunestore/internal/repos"
	"dunestore/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	OrderHandler    *OrderHandler
	ContentHandler  *ContentHandler
	AdminHandler    *AdminHandler
	AuthHandler     *AuthHandler
	Auth            *services.AuthService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	cartRepo := repos.NewCartStateRepo(db)
	settingsRepo := repos.NewSettingsRepo(db)
	bannerRepo := repos.NewBannerRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	orderSvc := services.NewOrderService(orderRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)
	exportSvc := services.NewExportService(orderRepo, prodRepo)

	// Orders are written locally unless a remote order-creation
	// endpoint is configured.
	var placer checkout.OrderPlacer = orderSvc
	if cfg.OrderEndpoint != "" {
		placer = checkout.NewHTTPPlacer(cfg.OrderEndpoint)
	}
	flow := checkout.NewFlow(placer)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Catalog: catalogSvc, CartStorage: cartRepo},
		CheckoutHandler: &CheckoutHandler{Flow: flow, CartStorage: cartRepo},
		OrderHandler:    &OrderHandler{Order: orderSvc, Repo: orderRepo},
		ContentHandler:  &ContentHandler{Banners: bannerRepo, Settings: settingsRepo},
		AdminHandler: &AdminHandler{
			Cats: catRepo, Prods: prodRepo, Orders: orderRepo,
			Banners: bannerRepo, Settings: settingsRepo,
			Export: exportSvc, MediaDir: cfg.MediaDir,
		},
		AuthHandler: &AuthHandler{Auth: authSvc},
		Auth:        authSvc,
	}
}
