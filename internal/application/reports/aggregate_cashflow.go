package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// AggregateInflowSeries agrupa pagos completados en cubetas diarias por
// payment_date, con desglose por método. Serie ascendente y dispersa.
func AggregateInflowSeries(payments []entity.Payment) []dto.InflowDayDTO {
	byDate := make(map[string]*dto.InflowDayDTO)
	for _, p := range payments {
		d := DayString(p.PaymentDate)
		day, ok := byDate[d]
		if !ok {
			day = &dto.InflowDayDTO{Date: d}
			byDate[d] = day
		}
		day.PaymentCount++
		day.TotalAmount = day.TotalAmount.Add(p.Amount)
		switch p.PaymentMethod {
		case entity.MethodCash:
			day.CashTotal = day.CashTotal.Add(p.Amount)
		case entity.MethodUPI:
			day.UpiTotal = day.UpiTotal.Add(p.Amount)
		case entity.MethodBankTransfer:
			day.BankTotal = day.BankTotal.Add(p.Amount)
		}
	}
	days := make([]dto.InflowDayDTO, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// AggregateOutflowSeries agrupa retiros procesados en cubetas diarias por la
// porción de fecha de processed_at. Base de fecha distinta a la de entradas:
// los retiros no tienen columna de fecha pura, es intencional.
func AggregateOutflowSeries(withdrawals []entity.Withdrawal) []dto.OutflowDayDTO {
	byDate := make(map[string]*dto.OutflowDayDTO)
	for _, w := range withdrawals {
		if w.Status != entity.WithdrawalProcessed || w.ProcessedAt == nil {
			continue
		}
		d := DayString(*w.ProcessedAt)
		day, ok := byDate[d]
		if !ok {
			day = &dto.OutflowDayDTO{Date: d}
			byDate[d] = day
		}
		day.WithdrawalCount++
		day.TotalAmount = day.TotalAmount.Add(w.FinalAmount)
	}
	days := make([]dto.OutflowDayDTO, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// AggregateCashFlowSeries mezcla las dos series por fecha. Una fecha presente
// en una sola de las dos aparece igualmente, con cero en el lado ausente;
// siempre net = inflow - outflow.
func AggregateCashFlowSeries(inflows []dto.InflowDayDTO, outflows []dto.OutflowDayDTO) []dto.CashFlowDayDTO {
	byDate := make(map[string]*dto.CashFlowDayDTO)
	get := func(date string) *dto.CashFlowDayDTO {
		day, ok := byDate[date]
		if !ok {
			day = &dto.CashFlowDayDTO{Date: date, Inflow: decimal.Zero, Outflow: decimal.Zero}
			byDate[date] = day
		}
		return day
	}
	for _, in := range inflows {
		get(in.Date).Inflow = in.TotalAmount
	}
	for _, out := range outflows {
		get(out.Date).Outflow = out.TotalAmount
	}
	days := make([]dto.CashFlowDayDTO, 0, len(byDate))
	for _, day := range byDate {
		day.NetCashFlow = day.Inflow.Sub(day.Outflow)
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
