package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
)

const dateLayout = "2006-01-02"

// parseDateQuery lee un query param de fecha YYYY-MM-DD. Si está vacío se usa
// el fallback (normalmente la fecha del servidor: el instante de referencia es
// siempre explícito hacia abajo, solo el borde HTTP aplica el "hoy" implícito).
func parseDateQuery(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parámetro %s: se espera YYYY-MM-DD", name)
	}
	return d, nil
}

// parseRangeQuery lee start_date y end_date, ambos obligatorios y en orden.
func parseRangeQuery(c *fiber.Ctx) (from, to time.Time, err error) {
	rawFrom, rawTo := c.Query("start_date"), c.Query("end_date")
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date y end_date son obligatorios (YYYY-MM-DD)")
	}
	from, err = time.Parse(dateLayout, rawFrom)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: se espera YYYY-MM-DD")
	}
	to, err = time.Parse(dateLayout, rawTo)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: se espera YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date no puede ser anterior a start_date")
	}
	return from, to, nil
}

// badRequest respuesta 400 con el mensaje del error de validación.
func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
}
