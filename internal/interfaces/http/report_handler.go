package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// ReportHandler endpoints de reportes administrativos.
type ReportHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *reports.Service, log *logger.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// Daily devuelve el desglose completo de una fecha.
// GET /api/reports/daily?date=YYYY-MM-DD
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	report, err := h.svc.DailyReport(c.Context(), date)
	if err != nil {
		return degraded(c, h.log, err, dto.DailyReportDTO{
			Date:     date.Format(dateLayout),
			ByMethod: []dto.MethodGroupDTO{},
			ByStaff:  []dto.DailyStaffGroupDTO{},
			Payments: []dto.DailyPaymentDTO{},
		})
	}
	return c.JSON(report)
}

// DailyPDF devuelve la versión imprimible del reporte diario. A diferencia de
// los reportes JSON, un PDF a medias no sirve de nada: aquí sí se responde 500.
// GET /api/reports/daily/pdf?date=YYYY-MM-DD
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	date, err := parseDateQuery(c, "date", time.Now())
	if err != nil {
		return badRequest(c, err)
	}
	pdf, err := h.svc.DailyReportPDF(c.Context(), date)
	if err != nil {
		h.log.Error().Err(err).Msg("generación de PDF fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-diario-%s.pdf"`, date.Format(dateLayout)))
	return c.Send(pdf)
}

// CustomerPayments devuelve el reporte de pagos por cliente e inscripción.
// GET /api/reports/customer-payments?start_date&end_date
func (h *ReportHandler) CustomerPayments(c *fiber.Ctx) error {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	rows, err := h.svc.CustomerPayments(c.Context(), from, to)
	if err != nil {
		return degraded(c, h.log, err, []dto.CustomerPaymentRowDTO{})
	}
	if rows == nil {
		rows = []dto.CustomerPaymentRowDTO{}
	}
	return c.JSON(rows)
}

// AccessControl devuelve la lista blanca con perfiles resueltos.
// GET /api/access-control
func (h *ReportHandler) AccessControl(c *fiber.Ctx) error {
	rows, err := h.svc.AccessControl(c.Context())
	if err != nil {
		return degraded(c, h.log, err, []dto.AccessEntryDTO{})
	}
	if rows == nil {
		rows = []dto.AccessEntryDTO{}
	}
	return c.JSON(rows)
}
