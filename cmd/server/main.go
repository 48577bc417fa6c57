package main

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/fadilmartias/careercraft/internal/domain/fiber/handler"
	"github.com/fadilmartias/careercraft/internal/middleware"
	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/repository"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/session"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/fadilmartias/careercraft/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	backendConfig := config.LoadBackendConfig()
	sessionConfig := config.LoadSessionConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// Leave room for multipart overhead on top of the 16MB CV limit.
		BodyLimit: util.MaxUploadSize + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return util.ErrorResponse(ctx, util.ErrorResponseFormat{
				Code:    code,
				Message: message,
			}, err)
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))

	app.Use(middleware.RateLimiter(120, 1*time.Minute))

	handler.RegisterStatic(app, web.Static)

	registry := session.NewRegistry(sessionConfig.TTL, func() service.CareerCraftServiceInterface {
		return service.NewCareerCraftService(backendConfig)
	})
	registry.StartJanitor(10 * time.Minute)
	defer registry.Close()
	app.Use(middleware.Visitor(registry, appConfig.IsProduction()))

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("Could not parse templates: %v", err)
	}
	themes := usecase.NewThemeUsecase(preferenceRepository())

	handler.NewPageHandler(appConfig.Name, renderer, themes, appConfig.IsProduction()).RegisterRoutes(app)
	handler.NewCareerCraftHandler(renderer).RegisterRoutes(app)
	handler.NewInterviewHandler(renderer).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d, visitor sessions: %d", runtime.NumGoroutine(), registry.Len())
		}
	}()

	log.Printf("Server running on %s, backend at %s", appConfig.Port, backendConfig.BaseURL)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

// preferenceRepository stores themes in postgres when DB_HOST is set, and
// in memory otherwise.
func preferenceRepository() repository.PreferenceRepositoryInterface {
	if !config.LoadDBConfig().Enabled() {
		log.Println("DB_HOST not set, keeping theme preferences in memory")
		return repository.NewMemoryPreferenceRepository()
	}
	return repository.NewPreferenceRepository(ConnectDB())
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(2)
		pgDB.SetMaxOpenConns(5)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(10)
		pgDB.SetMaxOpenConns(50)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.VisitorPreference{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
