package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketRate precio del gramo de un metal en una fecha. Hay a lo sumo una fila
// por (asset_type, rate_date).
type MarketRate struct {
	ID           string
	AssetType    string // gold | silver
	PricePerGram decimal.Decimal
	RateDate     time.Time // solo fecha
	Source       string    // "manual", "api", etc.
}
