package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/auth"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reports   *reports.Service
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. Todos los reportes requieren Bearer
// Token de un administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Reportes (protegido, solo admin)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Reports, deps.Log)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
	dashboard.Get("/trend", dashboardHandler.GetTrend)
	dashboard.Get("/methods", dashboardHandler.GetMethods)

	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.Reports, deps.Log)
	staff.Get("/", staffHandler.List)
	staff.Get("/reports/performance", staffHandler.Performance)
	staff.Get("/:id", staffHandler.GetByID)

	schemes := protected.Group("/schemes")
	schemeHandler := NewSchemeHandler(deps.Reports, deps.Log)
	schemes.Get("/", schemeHandler.List)
	schemes.Get("/reports/performance", schemeHandler.Performance)
	protected.Get("/market-rates", schemeHandler.MarketRates)

	cashflowHandler := NewCashFlowHandler(deps.Reports, deps.Log)
	protected.Get("/withdrawals", cashflowHandler.Withdrawals)
	cashflow := protected.Group("/cashflow")
	cashflow.Get("/inflows", cashflowHandler.Inflows)
	cashflow.Get("/outflows", cashflowHandler.Outflows)
	cashflow.Get("/net", cashflowHandler.Net)

	reportHandler := NewReportHandler(deps.Reports, deps.Log)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/daily", reportHandler.Daily)
	reportsGroup.Get("/daily/pdf", reportHandler.DailyPDF)
	reportsGroup.Get("/customer-payments", reportHandler.CustomerPayments)
	protected.Get("/access-control", reportHandler.AccessControl)
}
