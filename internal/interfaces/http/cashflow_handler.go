package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// CashFlowHandler endpoints de retiros y flujo de caja.
type CashFlowHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewCashFlowHandler construye el handler.
func NewCashFlowHandler(svc *reports.Service, log *logger.Logger) *CashFlowHandler {
	return &CashFlowHandler{svc: svc, log: log}
}

// Withdrawals devuelve el listado completo de retiros.
// GET /api/withdrawals
func (h *CashFlowHandler) Withdrawals(c *fiber.Ctx) error {
	roster, err := h.svc.WithdrawalRoster(c.Context())
	if err != nil {
		return degraded(c, h.log, err, []dto.WithdrawalRosterItemDTO{})
	}
	if roster == nil {
		roster = []dto.WithdrawalRosterItemDTO{}
	}
	return c.JSON(roster)
}

// Inflows devuelve las entradas diarias del rango.
// GET /api/cashflow/inflows?start_date&end_date
func (h *CashFlowHandler) Inflows(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	days, err := h.svc.InflowSeries(c.Context(), from, to)
	if err != nil {
		return degraded(c, h.log, err, []dto.InflowDayDTO{})
	}
	if days == nil {
		days = []dto.InflowDayDTO{}
	}
	return c.JSON(days)
}

// Outflows devuelve las salidas diarias del rango.
// GET /api/cashflow/outflows?start_date&end_date
func (h *CashFlowHandler) Outflows(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	days, err := h.svc.OutflowSeries(c.Context(), from, to)
	if err != nil {
		return degraded(c, h.log, err, []dto.OutflowDayDTO{})
	}
	if days == nil {
		days = []dto.OutflowDayDTO{}
	}
	return c.JSON(days)
}

// Net devuelve el flujo neto diario del rango.
// GET /api/cashflow/net?start_date&end_date
func (h *CashFlowHandler) Net(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	days, err := h.svc.CashFlowSeries(c.Context(), from, to)
	if err != nil {
		return degraded(c, h.log, err, []dto.CashFlowDayDTO{})
	}
	if days == nil {
		days = []dto.CashFlowDayDTO{}
	}
	return c.JSON(days)
}
