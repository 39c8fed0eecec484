package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/sku-inventory-api/internal/application/analytics"
	"github.com/jhoicas/sku-inventory-api/internal/application/catalog"
	"github.com/jhoicas/sku-inventory-api/internal/application/usecase"
	"github.com/jhoicas/sku-inventory-api/internal/domain/repository"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/memory"
	infamongo "github.com/jhoicas/sku-inventory-api/internal/infrastructure/mongo"
	infrapdf "github.com/jhoicas/sku-inventory-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sku-inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sku-inventory-api/internal/interfaces/http"
	"github.com/jhoicas/sku-inventory-api/pkg/config"
	"github.com/jhoicas/sku-inventory-api/pkg/logger"
	"github.com/jhoicas/sku-inventory-api/pkg/metrics"
)

// stores agrupa los repositorios del driver elegido y cómo liberarlos.
type stores struct {
	skus       repository.SKURepository
	warehouses repository.WarehouseRepository
	suppliers  repository.SupplierRepository
	close      func(context.Context)
}

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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}
	merge, err := catalog.ParseMergePolicy(cfg.SKU.UpdateMerge)
	if err != nil {
		log.Fatal().Err(err).Msg("SKU_UPDATE_MERGE")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}

	skuUC := catalog.NewSKUUseCase(st.skus, st.warehouses, st.suppliers, merge)
	lowStockUC := catalog.NewLowStockUseCase(st.skus, st.warehouses, st.suppliers, infrapdf.NewLowStockReport(cfg.App.Name))
	warehouseUC := usecase.NewWarehouseUseCase(st.warehouses)
	supplierUC := usecase.NewSupplierUseCase(st.suppliers)
	dashboardUC := appanalytics.NewDashboardUseCase(st.skus)
	httpMetrics := metrics.NewHTTPMetrics("sku_inventory")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.MetricsMiddleware(httpMetrics))
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo generado).
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "SKU Inventory API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SKUUC:       skuUC,
		LowStockUC:  lowStockUC,
		WarehouseUC: warehouseUC,
		SupplierUC:  supplierUC,
		DashboardUC: dashboardUC,
		Metrics:     httpMetrics,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	st.close(shutdownCtx)

	log.Info().Msg("aplicación detenida")
}

// openStores conecta el driver configurado y aplica esquema o índices.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &stores{
			skus:       postgres.NewSKURepository(pool),
			warehouses: postgres.NewWarehouseRepository(pool),
			suppliers:  postgres.NewSupplierRepository(pool),
			close:      func(context.Context) { pool.Close() },
		}, nil

	case config.StorageMongo:
		client, db, err := infamongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := infamongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			skus:       infamongo.NewSKURepository(db),
			warehouses: infamongo.NewWarehouseRepository(db),
			suppliers:  infamongo.NewSupplierRepository(db),
			close:      func(ctx context.Context) { _ = client.Disconnect(ctx) },
		}, nil

	default:
		return &stores{
			skus:       memory.NewSKURepository(),
			warehouses: memory.NewWarehouseRepository(),
			suppliers:  memory.NewSupplierRepository(),
			close:      func(context.Context) {},
		}, nil
	}
}
