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

	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
	"github.com/jhoicas/padaria-pdv/internal/application/vendas"
	infrapdf "github.com/jhoicas/padaria-pdv/internal/infrastructure/pdf"
	"github.com/jhoicas/padaria-pdv/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/padaria-pdv/internal/interfaces/http"
	"github.com/jhoicas/padaria-pdv/pkg/config"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("page_size", cfg.Metricas.PageSize).
		Int("chunk_size", cfg.Metricas.ChunkSize).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	vendaRepo := postgres.NewVendaRepository(pool)
	catalogoRepo := postgres.NewCatalogoRepository(pool)

	fetcher := vendas.NewFetcher(vendaRepo, cfg.Metricas.PageSize, cfg.Metricas.ChunkSize, log)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	metricasUC := usecase.NewMetricasUseCase(fetcher, log)
	lucratividadeUC := usecase.NewLucratividadeUseCase(
		fetcher, catalogoRepo, pdfGenerator,
		cfg.Custos.FracaoInvisivel, cfg.Custos.CustosFixosPadrao, log,
	)
	custoReceitaUC := usecase.NewCustoReceitaUseCase(catalogoRepo, cfg.Custos.FracaoInvisivel)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vazio: rotas /api sem autenticação")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Padaria PDV API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MetricasUC:      metricasUC,
		LucratividadeUC: lucratividadeUC,
		CustoReceitaUC:  custoReceitaUC,
		Logger:          log,
		JWTSecret:       cfg.JWT.Secret,
		JWTIssuer:       cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
