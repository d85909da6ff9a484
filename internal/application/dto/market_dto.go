package dto

import "github.com/shopspring/decimal"

// CurrentRateDTO precio vigente combinado: el oro y la plata pueden tener
// fechas distintas; RateDate es la más reciente de las dos. Un puntero nil
// indica que ese metal no tiene precio registrado.
type CurrentRateDTO struct {
	GoldRate   *decimal.Decimal `json:"gold_rate"`
	SilverRate *decimal.Decimal `json:"silver_rate"`
	RateDate   string           `json:"rate_date"` // YYYY-MM-DD
	Source     string           `json:"source"`
}

// RateHistoryEntryDTO un día del historial; solo se pueblan los metales con
// fila ese día.
type RateHistoryEntryDTO struct {
	RateDate   string           `json:"rate_date"`
	GoldRate   *decimal.Decimal `json:"gold_rate"`
	SilverRate *decimal.Decimal `json:"silver_rate"`
	Source     string           `json:"source"`
}

// MarketRatesDTO precio vigente + historial de 30 días (descendente).
// Current es nil si nunca se ha registrado un precio.
type MarketRatesDTO struct {
	Current *CurrentRateDTO       `json:"current"`
	History []RateHistoryEntryDTO `json:"history"`
}
