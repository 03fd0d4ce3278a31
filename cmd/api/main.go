package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/bizness/bizness-api/internal/application/analytics"
	"github.com/bizness/bizness-api/internal/application/auth"
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/pricing"
	"github.com/bizness/bizness-api/internal/application/report"
	"github.com/bizness/bizness-api/internal/application/usecase"
	infraai "github.com/bizness/bizness-api/internal/infrastructure/ai"
	infrapdf "github.com/bizness/bizness-api/internal/infrastructure/pdf"
	"github.com/bizness/bizness-api/internal/infrastructure/postgres"
	httpRouter "github.com/bizness/bizness-api/internal/interfaces/http"
	"github.com/bizness/bizness-api/pkg/config"
	"github.com/bizness/bizness-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	userRepo := postgres.NewUserRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	todoRepo := postgres.NewTodoRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	llm, err := infraai.NewFromConfig(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de IA")
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	threshold := decimal.NewFromInt(int64(cfg.Inventory.LowStockThreshold))
	overviewUC := analytics.NewOverviewUseCase(productRepo, transactionRepo, analytics.Options{
		LowStockThreshold: threshold,
		TopN:              cfg.Inventory.TopN,
	})
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.AI.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		// recibos de hasta 5 MiB más el overhead del multipart
		BodyLimit:    usecase.MaxReceiptBytes + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bizness API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(userRepo),
		BusinessUC:    usecase.NewBusinessUseCase(businessRepo),
		ProductUC:     usecase.NewProductUseCase(productRepo),
		MaterialUC:    usecase.NewMaterialUseCase(materialRepo, txRunner, threshold, cfg.Inventory.TopN),
		TodoUC:        usecase.NewTodoUseCase(todoRepo),
		FileUC:        usecase.NewFileUseCase(fileRepo),
		TransactionUC: usecase.NewTransactionUseCase(transactionRepo),
		OverviewUC:    overviewUC,
		ReportUC:      report.NewReportUseCase(businessRepo, productRepo, overviewUC, pdfGenerator),
		CalculatorUC:  pricing.NewCalculatorUseCase(llm, pdfGenerator, cfg.AI.Timeout(), log),
		AIUC:          usecase.NewAIUseCase(llm, cfg.AI.Timeout()),
		JWTSecret:     cfg.JWT.Secret,
		ServiceName:   cfg.App.Name,
		AIRateLimit: httpRouter.RateLimit{
			PerMinute: cfg.AI.RatePerMinute,
			Burst:     cfg.AI.RateBurst,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
