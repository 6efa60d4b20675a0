package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

// Roles do backend com acesso aos relatórios.
var rolesRelatorios = []string{"authenticated", "service_role"}

// RouterDeps dependências para o router.
type RouterDeps struct {
	MetricasUC      *usecase.MetricasUseCase
	LucratividadeUC *usecase.LucratividadeUseCase
	CustoReceitaUC  *usecase.CustoReceitaUseCase
	Logger          *logger.Logger
	// JWTSecret vazio desliga a autenticação (desenvolvimento local).
	JWTSecret string
	JWTIssuer string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), RequireRole(rolesRelatorios...))
	}

	metricasHandler := NewMetricasHandler(deps.MetricasUC, deps.Logger)
	api.Get("/vendas/metricas", metricasHandler.GetMetricas)

	lucratividadeHandler := NewLucratividadeHandler(deps.LucratividadeUC)
	api.Get("/lucratividade", lucratividadeHandler.GetRelatorio)
	api.Get("/lucratividade/pdf", lucratividadeHandler.GetRelatorioPDF)

	receitaHandler := NewReceitaHandler(deps.CustoReceitaUC)
	api.Get("/receitas/:id/custo", receitaHandler.GetCusto)
}
