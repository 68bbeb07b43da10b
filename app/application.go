package app

import (
	"errors"
	"time"

	"github.com/acikkaynak/housing-api-go/broker"
	"github.com/acikkaynak/housing-api-go/config"
	"github.com/acikkaynak/housing-api-go/handler"
	"github.com/acikkaynak/housing-api-go/listings"
	"github.com/acikkaynak/housing-api-go/middleware/auth"
	"github.com/acikkaynak/housing-api-go/middleware/cache"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/storage"
	_ "github.com/acikkaynak/housing-api-go/swagger"
	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ResponseCache is the shared cache behind the /geocode routes.
type ResponseCache interface {
	cache.Store
	handler.Pruner
}

type Dependencies struct {
	Config    *config.Config
	Bucket    storage.Bucket
	Store     handler.ListingStore
	Resolver  handler.AddressResolver
	Publisher broker.Publisher
	Cache     ResponseCache
}

type Application struct {
	app  *fiber.App
	deps Dependencies
}

func New(deps Dependencies) *Application {
	if deps.Publisher == nil {
		deps.Publisher = broker.Noop{}
	}

	json := jsoniter.ConfigCompatibleWithStandardLibrary
	app := fiber.New(fiber.Config{
		BodyLimit:    deps.Config.HTTP.BodyLimit,
		ReadTimeout:  30 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New())
	app.Use(recover.New())
	app.Use(auth.New(deps.Config.APIKey))
	app.Use(pprof.New())
	if deps.Cache != nil {
		app.Use(cache.New(deps.Cache, deps.Config.Redis.TTL, "/geocode/"))
	}

	return &Application{app: app, deps: deps}
}

func (a *Application) Register() {
	listingsHandler := handler.NewListingsHandler(a.deps.Store, a.deps.Publisher, a.deps.Config.Broker.Topic)
	geocodeHandler := handler.NewGeocodeHandler(a.deps.Resolver)

	a.app.Get("/", handler.RedirectSwagger)
	a.app.Get("/healthcheck", handler.HealthCheck)
	a.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	a.app.Get("/monitor", monitor.New())

	a.app.Get("/listings", listingsHandler.HandleList)
	a.app.Post("/submit-listing", listingsHandler.HandleSubmit)
	a.app.Post("/upload-image", handler.UploadImage(a.deps.Bucket, a.deps.Config.Storage.PublicURL))
	a.app.Get("/images/*", handler.ServeImage(a.deps.Bucket))
	a.app.Get("/init-data", handler.PreviewInitData)
	a.app.Post("/init-data", handler.InitData(a.deps.Store))
	a.app.Get("/debug-config", handler.DebugConfig(a.deps.Config.Env, a.deps.Config.Storage))

	geocodeRoutes := a.app.Group("/geocode")
	geocodeRoutes.Get("/search", geocodeHandler.HandleSearch)
	geocodeRoutes.Get("/reverse", geocodeHandler.HandleReverse)
	geocodeRoutes.Post("/select", geocodeHandler.HandleSelect)

	if a.deps.Cache != nil {
		a.app.Get("/caches/prune", handler.InvalidateCache(a.deps.Cache))
	}

	route := a.app.Group("/swagger")
	route.Get("*", swagger.HandlerDefault)
}

func (a *Application) App() *fiber.App {
	return a.app
}

func (a *Application) Listen(addr string) error {
	return a.app.Listen(addr)
}

func (a *Application) Shutdown() error {
	return a.app.Shutdown()
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Logger().Error("request failed",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Error(err))
	}

	return ctx.Status(code).JSON(listings.ErrorResponse{Success: false, Error: err.Error()})
}
