package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/seu-usuario/choperia-api/internal/application/analytics"
	"github.com/seu-usuario/choperia-api/internal/application/auth"
	appstock "github.com/seu-usuario/choperia-api/internal/application/stock"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
	infrapdf "github.com/seu-usuario/choperia-api/internal/infrastructure/pdf"
	"github.com/seu-usuario/choperia-api/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/choperia-api/internal/interfaces/http"
	"github.com/seu-usuario/choperia-api/migrations"
	"github.com/seu-usuario/choperia-api/pkg/config"
	"github.com/seu-usuario/choperia-api/pkg/logger"

	_ "github.com/seu-usuario/choperia-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	outputRepo := postgres.NewOutputRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, entryRepo)
	entryUC := usecase.NewEntryUseCase(entryRepo, categoryRepo, eventRepo, txRunner)
	outputUC := usecase.NewOutputUseCase(outputRepo, categoryRepo, eventRepo)
	stockUC := appstock.NewUseCase(stockRepo, txRunner)
	dashboardUC := analytics.NewDashboardUseCase(entryRepo, outputRepo, eventRepo, categoryRepo)
	reportGen := infrapdf.NewMonthlyReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Metrics.Enabled {
		app.Use(httpRouter.MetricsMiddleware())
		app.Get("/metrics", httpRouter.MetricsHandler())
	}

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Choperia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CategoryUC:  categoryUC,
		EventUC:     eventUC,
		EntryUC:     entryUC,
		OutputUC:    outputUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		Report:      reportGen,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}

// runMigrations aplica as migrações embutidas via goose (driver pgx stdlib).
func runMigrations(dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
