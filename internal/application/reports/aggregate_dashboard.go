package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// AggregateDashboardMetrics calcula los KPIs del panel a partir de los
// conteos ya agregados y de los pagos completados y retiros procesados
// completos. "Hoy" es la porción de fecha del instante de referencia, nunca
// el reloj del sistema.
func AggregateDashboardMetrics(
	today time.Time,
	totalCustomers, activeEnrollments int,
	payments []entity.Payment,
	processed []entity.Withdrawal,
) dto.DashboardMetricsDTO {
	out := dto.DashboardMetricsDTO{
		TotalCustomers:    totalCustomers,
		ActiveEnrollments: activeEnrollments,
		TodayCollections:  decimal.Zero,
		TodayWithdrawals:  decimal.Zero,
		TotalCollections:  decimal.Zero,
		TotalWithdrawals:  decimal.Zero,
	}
	for _, p := range payments {
		out.TotalCollections = out.TotalCollections.Add(p.Amount)
		if sameDay(p.PaymentDate, today) {
			out.TodayCollections = out.TodayCollections.Add(p.Amount)
		}
	}
	for _, w := range processed {
		out.TotalWithdrawals = out.TotalWithdrawals.Add(w.FinalAmount)
		if w.ProcessedAt != nil && sameDay(*w.ProcessedAt, today) {
			out.TodayWithdrawals = out.TodayWithdrawals.Add(w.FinalAmount)
		}
	}
	return out
}

// AggregateCollectionTrend agrupa pagos completados por payment_date y
// devuelve la serie ordenada ascendente. La serie es dispersa: los días sin
// pagos no aparecen y no hay fechas duplicadas.
func AggregateCollectionTrend(payments []entity.Payment) []dto.TrendPointDTO {
	byDate := make(map[string]decimal.Decimal)
	for _, p := range payments {
		d := DayString(p.PaymentDate)
		byDate[d] = byDate[d].Add(p.Amount)
	}
	points := make([]dto.TrendPointDTO, 0, len(byDate))
	for d, total := range byDate {
		points = append(points, dto.TrendPointDTO{Date: d, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// methodOrder orden de presentación de los métodos conocidos.
var methodOrder = []string{entity.MethodCash, entity.MethodUPI, entity.MethodBankTransfer}

// methodLabels etiquetas legibles por método.
var methodLabels = map[string]string{
	entity.MethodCash:         "Cash",
	entity.MethodUPI:          "UPI",
	entity.MethodBankTransfer: "Bank Transfer",
}

// MethodLabel devuelve la etiqueta legible de un método de pago; los métodos
// desconocidos se devuelven tal cual.
func MethodLabel(method string) string {
	if label, ok := methodLabels[method]; ok {
		return label
	}
	return method
}

// AggregateMethodDistribution agrupa pagos completados por método. La suma de
// los grupos siempre iguala la suma total del conjunto de entrada.
func AggregateMethodDistribution(payments []entity.Payment) []dto.MethodGroupDTO {
	type acc struct {
		count int
		total decimal.Decimal
	}
	byMethod := make(map[string]*acc)
	for _, p := range payments {
		a, ok := byMethod[p.PaymentMethod]
		if !ok {
			a = &acc{}
			byMethod[p.PaymentMethod] = a
		}
		a.count++
		a.total = a.total.Add(p.Amount)
	}

	var groups []dto.MethodGroupDTO
	appendGroup := func(method string) {
		a, ok := byMethod[method]
		if !ok {
			return
		}
		groups = append(groups, dto.MethodGroupDTO{
			Method: MethodLabel(method),
			Count:  a.count,
			Total:  a.total,
		})
		delete(byMethod, method)
	}
	for _, m := range methodOrder {
		appendGroup(m)
	}
	// Métodos fuera del catálogo conocido, en orden estable.
	var rest []string
	for m := range byMethod {
		rest = append(rest, m)
	}
	sort.Strings(rest)
	for _, m := range rest {
		appendGroup(m)
	}
	return groups
}
