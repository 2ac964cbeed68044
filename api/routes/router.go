package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jdrosales/playmerch-backend/api/controllers"
	"github.com/jdrosales/playmerch-backend/api/middleware"
	cartsvc "github.com/jdrosales/playmerch-backend/internal/cart"
	catalogsvc "github.com/jdrosales/playmerch-backend/internal/catalog"
	checkoutsvc "github.com/jdrosales/playmerch-backend/internal/checkout"
	gamedatasvc "github.com/jdrosales/playmerch-backend/internal/gamedata"
	ordersvc "github.com/jdrosales/playmerch-backend/internal/orders"
	settingssvc "github.com/jdrosales/playmerch-backend/internal/settings"
	"github.com/jdrosales/playmerch-backend/pkg/config"
	"github.com/jdrosales/playmerch-backend/pkg/db"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
	"github.com/jdrosales/playmerch-backend/pkg/metrics"
	pkgredis "github.com/jdrosales/playmerch-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs. The router owns no
// construction; services are wired in main and passed down.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *pkgredis.Client
	HTTPMetrics *metrics.HTTPMetrics

	Catalog  catalogsvc.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Orders   ordersvc.Service
	Settings settingssvc.Service
	GameData gamedatasvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogListProducts(deps.Catalog, logg))
			r.Get("/products/{productId}", controllers.CatalogGetProduct(deps.Catalog, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(cfg.CartToken, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(deps.Cart, logg))
				r.Delete("/", controllers.CartClear(deps.Cart, logg))
				r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
				r.Patch("/items", controllers.CartUpdateItem(deps.Cart, logg))
				r.Delete("/items", controllers.CartRemoveItem(deps.Cart, logg))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.Idempotency(deps.Redis, logg))
				r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))
			})
		})

		r.Get("/orders/number/{orderNumber}", controllers.OrderConfirmationByNumber(deps.Orders, logg))
		r.Get("/orders/{orderId}", controllers.OrderConfirmation(deps.Orders, logg))

		r.Get("/settings/payment-methods", controllers.SettingsPaymentMethods(deps.Settings, logg))

		r.Route("/gamedata", func(r chi.Router) {
			r.Get("/act", controllers.GameDataActiveAct(deps.GameData, logg))
			r.Get("/maps", controllers.GameDataMaps(deps.GameData, logg))
			r.Get("/bundles", controllers.GameDataBundles(deps.GameData, logg))
			r.Get("/skins/random", controllers.GameDataRandomSkin(deps.GameData, logg))
		})
	})

	return r
}
