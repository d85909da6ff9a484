package reports

import (
	"sort"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// AggregateMarketRates combina el precio vigente de cada metal en un registro
// "current" y agrupa el historial por fecha. current trae a lo sumo una fila
// por metal (la de max rate_date); history llega ya filtrada al rango y puede
// tener días con un solo metal poblado.
func AggregateMarketRates(current, history []entity.MarketRate) dto.MarketRatesDTO {
	out := dto.MarketRatesDTO{History: []dto.RateHistoryEntryDTO{}}

	var cur dto.CurrentRateDTO
	for _, r := range current {
		rate := r.PricePerGram
		switch r.AssetType {
		case entity.AssetGold:
			cur.GoldRate = &rate
		case entity.AssetSilver:
			cur.SilverRate = &rate
		default:
			continue
		}
		// La fecha y la fuente del registro combinado son las del metal más
		// recientemente actualizado.
		if d := DayString(r.RateDate); d > cur.RateDate {
			cur.RateDate = d
			cur.Source = r.Source
		}
	}
	if cur.GoldRate != nil || cur.SilverRate != nil {
		out.Current = &cur
	}

	byDate := make(map[string]*dto.RateHistoryEntryDTO)
	for _, r := range history {
		d := DayString(r.RateDate)
		e, ok := byDate[d]
		if !ok {
			e = &dto.RateHistoryEntryDTO{RateDate: d, Source: r.Source}
			byDate[d] = e
		}
		rate := r.PricePerGram
		switch r.AssetType {
		case entity.AssetGold:
			e.GoldRate = &rate
		case entity.AssetSilver:
			e.SilverRate = &rate
		}
	}
	for _, e := range byDate {
		out.History = append(out.History, *e)
	}
	sort.Slice(out.History, func(i, j int) bool { return out.History[i].RateDate > out.History[j].RateDate })
	return out
}
