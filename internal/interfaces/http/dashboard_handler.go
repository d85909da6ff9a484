package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// DashboardHandler endpoints del panel principal.
type DashboardHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc *reports.Service, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

// GetMetrics devuelve los KPIs del panel.
// GET /api/dashboard/metrics?date=YYYY-MM-DD (por defecto, hoy)
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	metrics, err := h.svc.DashboardMetrics(c.Context(), date)
	if err != nil {
		return degraded(c, h.log, err, dto.DashboardMetricsDTO{})
	}
	return c.JSON(metrics)
}

// GetTrend devuelve la serie de recaudo de los últimos 30 días.
// GET /api/dashboard/trend?date=YYYY-MM-DD
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	trend, err := h.svc.CollectionTrend(c.Context(), date)
	if err != nil {
		return degraded(c, h.log, err, []dto.TrendPointDTO{})
	}
	if trend == nil {
		trend = []dto.TrendPointDTO{}
	}
	return c.JSON(trend)
}

// GetMethods devuelve la distribución de pagos por método.
// GET /api/dashboard/methods
func (h *DashboardHandler) GetMethods(c *fiber.Ctx) error {
	groups, err := h.svc.MethodDistribution(c.Context())
	if err != nil {
		return degraded(c, h.log, err, []dto.MethodGroupDTO{})
	}
	if groups == nil {
		groups = []dto.MethodGroupDTO{}
	}
	return c.JSON(groups)
}
