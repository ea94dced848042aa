package server

import (
	"context"
	"errors"
	"time"

	"bistro/internal/handlers"
	"bistro/internal/logger"
	"bistro/internal/middleware"
	"bistro/internal/repositories"
	"bistro/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth     *services.AuthService
	Users    *services.UserService
	Menu     *services.MenuService
	Reviews  *services.ReviewService
	Carts    *services.CartService
	Payments *services.PaymentService
	Stats    *services.StatsService
}

// NewServices wires GORM repositories into services. publisher may be nil.
func NewServices(db *gorm.DB, jwtSecret string, provider services.PaymentProvider, publisher services.EventPublisher) *Services {
	userRepo := repositories.NewGORMUserRepository(db)
	menuRepo := repositories.NewGORMMenuRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)

	return &Services{
		Auth:     services.NewAuthService(userRepo, jwtSecret),
		Users:    services.NewUserService(userRepo),
		Menu:     services.NewMenuService(menuRepo),
		Reviews:  services.NewReviewService(repositories.NewGORMReviewRepository(db)),
		Carts:    services.NewCartService(cartRepo),
		Payments: services.NewPaymentService(paymentRepo, cartRepo, provider, publisher),
		Stats:    services.NewStatsService(userRepo, menuRepo, paymentRepo),
	}
}

// HealthCheck reports whether the store is reachable.
type HealthCheck func(ctx context.Context) error

// New builds the Fiber app with every route registered.
func New(svc *Services, health HealthCheck) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bistro",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		UnescapePath: true,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.Middleware())
	app.Use(cors.New())

	guards := handlers.Guards{
		Verify: middleware.AuthRequired(svc.Auth),
		Admin:  middleware.AdminRequired(svc.Auth),
	}

	handlers.NewJWTHandler(svc.Auth).RegisterRoutes(app)
	handlers.NewUserHandler(svc.Users, svc.Auth).RegisterRoutes(app, guards)
	handlers.NewMenuHandler(svc.Menu).RegisterRoutes(app, guards)
	handlers.NewReviewHandler(svc.Reviews).RegisterRoutes(app)
	handlers.NewCartHandler(svc.Carts).RegisterRoutes(app)
	handlers.NewPaymentHandler(svc.Payments).RegisterRoutes(app, guards)
	handlers.NewStatsHandler(svc.Stats).RegisterRoutes(app, guards)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("bistro boss server is listening")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		database := "connected"
		if health != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := health(ctx); err != nil {
				logger.FromCtx(c).WithError(err).Warn("database ping failed")
				database = "unreachable"
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
		})
	})

	return app
}

// errorHandler logs server-side errors that escape a handler, then answers with Fiber's default.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code >= fiber.StatusInternalServerError {
		logger.FromCtx(c).WithError(err).Error("unhandled error")
	}
	return fiber.DefaultErrorHandler(c, err)
}
