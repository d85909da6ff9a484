package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/internal/domain"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// StaffHandler endpoints de cobradores.
type StaffHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewStaffHandler construye el handler.
func NewStaffHandler(svc *reports.Service, log *logger.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: log}
}

// List devuelve el listado de cobradores con estadísticas.
// GET /api/staff?date=YYYY-MM-DD
func (h *StaffHandler) List(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	roster, err := h.svc.StaffRoster(c.Context(), date)
	if err != nil {
		return degraded(c, h.log, err, []dto.StaffRosterItemDTO{})
	}
	if roster == nil {
		roster = []dto.StaffRosterItemDTO{}
	}
	return c.JSON(roster)
}

// GetByID devuelve la vista profunda de un cobrador.
// GET /api/staff/:id?date=YYYY-MM-DD
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de cobrador inválido"})
	}
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	detail, err := h.svc.StaffDetail(c.Context(), id, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cobrador no encontrado"})
		}
		return degraded(c, h.log, err, dto.StaffDetailDTO{})
	}
	return c.JSON(detail)
}

// Performance devuelve el reporte de desempeño por cobrador en un rango.
// GET /api/staff/reports/performance?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *StaffHandler) Performance(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	rows, err := h.svc.StaffPerformance(c.Context(), from, to)
	if err != nil {
		return degraded(c, h.log, err, []dto.StaffPerformanceDTO{})
	}
	if rows == nil {
		rows = []dto.StaffPerformanceDTO{}
	}
	return c.JSON(rows)
}
