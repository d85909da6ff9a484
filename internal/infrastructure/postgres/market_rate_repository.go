package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

var _ repository.MarketRateRepository = (*MarketRateRepo)(nil)

// MarketRateRepo lectura de precios de mercado del metal.
type MarketRateRepo struct {
	q Querier
}

// NewMarketRateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMarketRateRepository(q Querier) *MarketRateRepo {
	return &MarketRateRepo{q: q}
}

const marketRateColumns = `id, asset_type, price_per_gram, rate_date, COALESCE(source, 'manual')`

// ListCurrent devuelve la fila más reciente de cada asset_type.
func (r *MarketRateRepo) ListCurrent(ctx context.Context) ([]entity.MarketRate, error) {
	query := `
		SELECT DISTINCT ON (asset_type) ` + marketRateColumns + `
		FROM market_rates ORDER BY asset_type, rate_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list current rates: %w", err)
	}
	defer rows.Close()
	return scanMarketRates(rows)
}

// ListSince devuelve las filas con rate_date >= since, descendente.
func (r *MarketRateRepo) ListSince(ctx context.Context, since time.Time) ([]entity.MarketRate, error) {
	query := `SELECT ` + marketRateColumns + ` FROM market_rates WHERE rate_date >= $1 ORDER BY rate_date DESC`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list rates since: %w", err)
	}
	defer rows.Close()
	return scanMarketRates(rows)
}

func scanMarketRates(rows pgx.Rows) ([]entity.MarketRate, error) {
	var list []entity.MarketRate
	for rows.Next() {
		var m entity.MarketRate
		if err := rows.Scan(&m.ID, &m.AssetType, &m.PricePerGram, &m.RateDate, &m.Source); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
