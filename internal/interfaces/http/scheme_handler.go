package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// SchemeHandler endpoints de planes de ahorro y precios de mercado.
type SchemeHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewSchemeHandler construye el handler.
func NewSchemeHandler(svc *reports.Service, log *logger.Logger) *SchemeHandler {
	return &SchemeHandler{svc: svc, log: log}
}

// List devuelve el listado de planes con estadísticas.
// GET /api/schemes
func (h *SchemeHandler) List(c *fiber.Ctx) error {
	roster, err := h.svc.SchemeRoster(c.Context())
	if err != nil {
		return degraded(c, h.log, err, []dto.SchemeRosterItemDTO{})
	}
	if roster == nil {
		roster = []dto.SchemeRosterItemDTO{}
	}
	return c.JSON(roster)
}

// Performance devuelve el reporte de desempeño por plan.
// GET /api/schemes/reports/performance
func (h *SchemeHandler) Performance(c *fiber.Ctx) error {
	rows, err := h.svc.SchemePerformance(c.Context())
	if err != nil {
		return degraded(c, h.log, err, []dto.SchemePerformanceDTO{})
	}
	if rows == nil {
		rows = []dto.SchemePerformanceDTO{}
	}
	return c.JSON(rows)
}

// MarketRates devuelve el precio vigente y el historial de 30 días.
// GET /api/market-rates?date=YYYY-MM-DD
func (h *SchemeHandler) MarketRates(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	rates, err := h.svc.MarketRates(c.Context(), date)
	if err != nil {
		return degraded(c, h.log, err, dto.MarketRatesDTO{History: []dto.RateHistoryEntryDTO{}})
	}
	return c.JSON(rates)
}
