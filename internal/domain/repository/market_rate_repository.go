package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// MarketRateRepository acceso de solo lectura a precios de mercado del metal.
type MarketRateRepository interface {
	// ListCurrent devuelve la fila más reciente (max rate_date) de cada
	// asset_type: a lo sumo una de oro y una de plata.
	ListCurrent(ctx context.Context) ([]entity.MarketRate, error)

	// ListSince devuelve las filas con rate_date >= since, descendente.
	ListSince(ctx context.Context, since time.Time) ([]entity.MarketRate, error)
}
