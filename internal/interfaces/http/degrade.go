package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// degraded responde 200 con el reporte vacío o en cero. El panel siempre
// recibe un reporte estructuralmente válido aunque el Record Store esté
// caído; el fallo queda en el log y la caché conserva el último valor bueno
// para la siguiente petición que sí pueda servirse.
func degraded[T any](c *fiber.Ctx, log *logger.Logger, err error, empty T) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("reporte degradado a valor vacío")
	return c.JSON(empty)
}
