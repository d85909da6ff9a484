package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pago(id, customerID, staffID, amount, method, date string) entity.Payment {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Payment{
		ID:            id,
		UserSchemeID:  "us-" + id,
		CustomerID:    customerID,
		StaffID:       staffID,
		Amount:        dec(amount),
		PaymentMethod: method,
		PaymentDate:   d,
		Status:        entity.PaymentCompleted,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Distribución por método
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: 3 pagos (500 cash, 300 upi, 200 cash) el mismo día producen
// {Cash: {2, 700}, UPI: {1, 300}}.
func TestDistribucionPorMetodo_AgrupaYSuma(t *testing.T) {
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "500", entity.MethodCash, "2024-05-10"),
		pago("p2", "c2", "s1", "300", entity.MethodUPI, "2024-05-10"),
		pago("p3", "c3", "s1", "200", entity.MethodCash, "2024-05-10"),
	}

	groups := reports.AggregateMethodDistribution(payments)
	require.Len(t, groups, 2)

	assert.Equal(t, "Cash", groups[0].Method)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "700", groups[0].Total.String())

	assert.Equal(t, "UPI", groups[1].Method)
	assert.Equal(t, 1, groups[1].Count)
	assert.Equal(t, "300", groups[1].Total.String())
}

// Propiedad: la suma de los grupos iguala la suma total del conjunto.
func TestDistribucionPorMetodo_SumaDeGruposIgualaTotal(t *testing.T) {
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "123.45", entity.MethodCash, "2024-05-10"),
		pago("p2", "c2", "s1", "67.89", entity.MethodUPI, "2024-05-11"),
		pago("p3", "c3", "s2", "1000.01", entity.MethodBankTransfer, "2024-05-12"),
		pago("p4", "c1", "s2", "0.55", entity.MethodCash, "2024-05-13"),
	}

	var total decimal.Decimal
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	var groupSum decimal.Decimal
	for _, g := range reports.AggregateMethodDistribution(payments) {
		groupSum = groupSum.Add(g.Total)
	}
	assert.True(t, groupSum.Equal(total), "suma de grupos %s != total %s", groupSum, total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas del dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricasDashboard_SeparaHoyDeHistorico(t *testing.T) {
	today := fecha(t, "2024-05-10")
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "500", entity.MethodCash, "2024-05-10"),
		pago("p2", "c2", "s1", "300", entity.MethodUPI, "2024-05-10"),
		pago("p3", "c3", "s1", "200", entity.MethodCash, "2024-05-10"),
		pago("p4", "c1", "s1", "150", entity.MethodCash, "2024-04-01"),
	}
	hoy := fecha(t, "2024-05-10").Add(14 * time.Hour)
	ayer := fecha(t, "2024-05-09").Add(9 * time.Hour)
	withdrawals := []entity.Withdrawal{
		{ID: "w1", Status: entity.WithdrawalProcessed, FinalAmount: dec("50"), ProcessedAt: &hoy},
		{ID: "w2", Status: entity.WithdrawalProcessed, FinalAmount: dec("30"), ProcessedAt: &ayer},
	}

	m := reports.AggregateDashboardMetrics(today, 42, 7, payments, withdrawals)

	assert.Equal(t, 42, m.TotalCustomers)
	assert.Equal(t, 7, m.ActiveEnrollments)
	assert.Equal(t, "1000", m.TodayCollections.String(), "recaudo de hoy")
	assert.Equal(t, "1150", m.TotalCollections.String(), "recaudo histórico")
	assert.Equal(t, "50", m.TodayWithdrawals.String())
	assert.Equal(t, "80", m.TotalWithdrawals.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tendencia de recaudo
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: la serie está ordenada ascendente, sin fechas duplicadas, y los
// días sin pagos no aparecen.
func TestTendencia_OrdenadaSinDuplicadosYDispersa(t *testing.T) {
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "100", entity.MethodCash, "2024-05-12"),
		pago("p2", "c2", "s1", "50", entity.MethodUPI, "2024-05-10"),
		pago("p3", "c3", "s1", "25", entity.MethodCash, "2024-05-12"),
		pago("p4", "c1", "s1", "10", entity.MethodCash, "2024-05-01"),
	}

	points := reports.AggregateCollectionTrend(payments)
	require.Len(t, points, 3, "solo los días con pagos aparecen")

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Date, points[i].Date, "serie ascendente y sin duplicados")
	}
	assert.Equal(t, "2024-05-01", points[0].Date)
	assert.Equal(t, "2024-05-12", points[2].Date)
	assert.Equal(t, "125", points[2].Total.String(), "los pagos del mismo día se suman")
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de caja
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoDeCaja_NetoEsEntradaMenosSalida(t *testing.T) {
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "100", entity.MethodCash, "2024-05-01"),
		pago("p2", "c2", "s1", "10", entity.MethodUPI, "2024-05-03"),
	}
	d3 := fecha(t, "2024-05-03").Add(11 * time.Hour)
	d2 := fecha(t, "2024-05-02").Add(16 * time.Hour)
	withdrawals := []entity.Withdrawal{
		{ID: "w1", Status: entity.WithdrawalProcessed, FinalAmount: dec("40"), ProcessedAt: &d2},
		{ID: "w2", Status: entity.WithdrawalProcessed, FinalAmount: dec("5"), ProcessedAt: &d3},
	}

	inflows := reports.AggregateInflowSeries(payments)
	outflows := reports.AggregateOutflowSeries(withdrawals)
	series := reports.AggregateCashFlowSeries(inflows, outflows)
	require.Len(t, series, 3, "toda fecha presente en alguna serie aparece")

	// 05-01: solo entrada.
	assert.Equal(t, "2024-05-01", series[0].Date)
	assert.Equal(t, "100", series[0].Inflow.String())
	assert.Equal(t, "0", series[0].Outflow.String())

	// 05-02: solo salida.
	assert.Equal(t, "2024-05-02", series[1].Date)
	assert.Equal(t, "0", series[1].Inflow.String())
	assert.Equal(t, "40", series[1].Outflow.String())

	// Propiedad: net = inflow - outflow en cada fecha.
	for _, day := range series {
		assert.True(t, day.NetCashFlow.Equal(day.Inflow.Sub(day.Outflow)),
			"net de %s debe ser inflow - outflow", day.Date)
	}
}

func TestEntradas_DesglosePorMetodo(t *testing.T) {
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "100", entity.MethodCash, "2024-05-01"),
		pago("p2", "c2", "s1", "60", entity.MethodUPI, "2024-05-01"),
		pago("p3", "c3", "s1", "40", entity.MethodBankTransfer, "2024-05-01"),
	}

	days := reports.AggregateInflowSeries(payments)
	require.Len(t, days, 1)
	assert.Equal(t, 3, days[0].PaymentCount)
	assert.Equal(t, "200", days[0].TotalAmount.String())
	assert.Equal(t, "100", days[0].CashTotal.String())
	assert.Equal(t, "60", days[0].UpiTotal.String())
	assert.Equal(t, "40", days[0].BankTotal.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Desempeño por cobrador
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: meta diaria 1000 y 2500 recaudados en un rango de 5 días da un
// promedio diario de 500 y un logro del 50%.
func TestDesempenoCobrador_LogroDeMeta(t *testing.T) {
	from, to := fecha(t, "2024-05-01"), fecha(t, "2024-05-05")
	profiles := []entity.StaffProfile{{ID: "s1", Name: "Ravi", Active: true}}
	metadata := []entity.StaffMetadata{{StaffID: "s1", StaffCode: "ST-01", DailyTargetAmount: dec("1000"), IsActive: true}}
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "1500", entity.MethodCash, "2024-05-02"),
		pago("p2", "c2", "s1", "1000", entity.MethodUPI, "2024-05-04"),
	}

	rows := reports.AggregateStaffPerformance(from, to, profiles, metadata, map[string]int{"s1": 12}, payments)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Ravi", row.StaffName)
	assert.Equal(t, "ST-01", row.StaffCode)
	assert.Equal(t, 2, row.TotalPayments)
	assert.Equal(t, "2500", row.TotalCollected.String())
	assert.Equal(t, 2, row.CustomersVisited)
	assert.Equal(t, 12, row.AssignedCustomers)
	assert.Equal(t, 50, row.TargetAchievement)
}

// Meta cero nunca divide por cero: el logro se define como 0. Y recomputar con
// los mismos insumos es idempotente.
func TestDesempenoCobrador_MetaCeroYIdempotencia(t *testing.T) {
	from, to := fecha(t, "2024-05-01"), fecha(t, "2024-05-05")
	profiles := []entity.StaffProfile{{ID: "s1", Name: "Ravi"}}
	metadata := []entity.StaffMetadata{{StaffID: "s1", DailyTargetAmount: decimal.Zero}}
	payments := []entity.Payment{
		pago("p1", "c1", "s1", "2500", entity.MethodCash, "2024-05-02"),
	}

	first := reports.AggregateStaffPerformance(from, to, profiles, metadata, nil, payments)
	second := reports.AggregateStaffPerformance(from, to, profiles, metadata, nil, payments)

	require.Len(t, first, 1)
	assert.Equal(t, 0, first[0].TargetAchievement, "meta cero define el logro como 0")
	assert.GreaterOrEqual(t, first[0].TargetAchievement, 0)
	assert.Equal(t, first[0], second[0], "recomputar con insumos idénticos da el mismo resultado")
}

// Propiedad: el conteo de asignaciones es independiente del historial de pagos.
func TestRosterCobradores_AsignacionesIndependientesDelRecaudo(t *testing.T) {
	profiles := []entity.StaffProfile{{ID: "s1", Name: "Ravi", Active: true}}
	metadata := []entity.StaffMetadata{{StaffID: "s1", StaffCode: "ST-01", DailyTargetAmount: dec("500"), IsActive: true}}

	items := reports.AggregateStaffRoster(profiles, metadata, map[string]int{"s1": 3}, nil)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].AssignedCustomers, "asignaciones no dependen de pagos")
	assert.Equal(t, "0", items[0].TodayCollections.String())
}

func TestRosterCobradores_SinMetadatosUsaDefaults(t *testing.T) {
	profiles := []entity.StaffProfile{{ID: "s1", Name: "Ravi"}}

	items := reports.AggregateStaffRoster(profiles, nil, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "N/A", items[0].StaffCode)
	assert.Equal(t, "collection", items[0].StaffType)
	assert.Equal(t, "0", items[0].DailyTarget.String())
}

func TestDetalleCobrador_VisitadosYRecientes(t *testing.T) {
	in := reports.StaffDetailInput{
		Profile:  entity.StaffProfile{ID: "s1", Name: "Ravi", Active: true},
		Metadata: &entity.StaffMetadata{StaffID: "s1", StaffCode: "ST-01", DailyTargetAmount: dec("1000"), IsActive: true},
		Assignments: []entity.StaffAssignment{
			{StaffID: "s1", CustomerID: "c1", CustomerName: "Asha", Phone: "111", IsActive: true},
		},
		TodayPayments: []entity.Payment{
			pago("p1", "c1", "s1", "200", entity.MethodCash, "2024-05-10"),
			pago("p2", "c1", "s1", "100", entity.MethodCash, "2024-05-10"),
			pago("p3", "c2", "s1", "50", entity.MethodUPI, "2024-05-10"),
		},
		AllPayments: []entity.Payment{
			pago("p1", "c1", "s1", "200", entity.MethodCash, "2024-05-10"),
			pago("p2", "c1", "s1", "100", entity.MethodCash, "2024-05-10"),
			pago("p3", "c2", "s1", "50", entity.MethodUPI, "2024-05-10"),
			pago("p0", "c1", "s1", "650", entity.MethodCash, "2024-04-01"),
		},
		RecentPayments: []entity.Payment{
			pago("p3", "c2", "s1", "50", entity.MethodUPI, "2024-05-10"),
		},
		Customers: []entity.Customer{{ID: "c2", Name: "Binu"}},
	}

	detail := reports.AggregateStaffDetail(in)
	assert.Equal(t, "350", detail.TodayCollections.String())
	assert.Equal(t, "1000", detail.TotalCollections.String())
	assert.Equal(t, 2, detail.CustomersVisitedToday, "clientes distintos entre los pagos de hoy")
	assert.Equal(t, 1, detail.AssignedCustomers)

	require.Len(t, detail.RecentPayments, 1)
	assert.Equal(t, "Binu", detail.RecentPayments[0].CustomerName)
	assert.Equal(t, "N/A", detail.RecentPayments[0].SchemeName, "inscripción sin plan resuelto usa N/A")
}

// ──────────────────────────────────────────────────────────────────────────────
// Retiros
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: un retiro pendiente reporta los gramos solicitados; una vez
// procesado con peso final, reporta el peso final.
func TestRosterRetiros_GramosDeMetal(t *testing.T) {
	pending := entity.Withdrawal{
		ID: "w1", UserSchemeID: "us1", CustomerID: "c1",
		RequestedGrams: dec("10"), Status: entity.WithdrawalPending,
	}
	items := reports.AggregateWithdrawalRoster([]entity.Withdrawal{pending}, nil, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "10", items[0].MetalGrams.String())

	processed := pending
	processed.Status = entity.WithdrawalProcessed
	processed.FinalGrams = dec("9.8")
	items = reports.AggregateWithdrawalRoster([]entity.Withdrawal{processed}, nil, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "9.8", items[0].MetalGrams.String(), "tras procesarse manda final_grams")
}

func TestRosterRetiros_RegistrosSinJoinUsanDefaults(t *testing.T) {
	w := entity.Withdrawal{ID: "w1", UserSchemeID: "us1", CustomerID: "c-huérfano", RequestedGrams: dec("2"), Status: entity.WithdrawalPending}

	items := reports.AggregateWithdrawalRoster([]entity.Withdrawal{w}, nil, nil, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "N/A", items[0].CustomerName)
	assert.Equal(t, "N/A", items[0].CustomerPhone)
	assert.Equal(t, "N/A", items[0].SchemeName)
	assert.Equal(t, entity.AssetGold, items[0].AssetType)
}

func TestRosterRetiros_ResuelveClienteYPlan(t *testing.T) {
	w := entity.Withdrawal{ID: "w1", UserSchemeID: "us1", CustomerID: "c1", RequestedGrams: dec("3"), Status: entity.WithdrawalPending}
	customers := []entity.Customer{{ID: "c1", Name: "Asha", Phone: "111"}}
	enrollments := []entity.UserScheme{{ID: "us1", CustomerID: "c1", SchemeID: "sch1"}}
	schemes := []entity.Scheme{{ID: "sch1", Name: "Plata Mensual", AssetType: entity.AssetSilver}}

	items := reports.AggregateWithdrawalRoster([]entity.Withdrawal{w}, customers, enrollments, schemes)
	require.Len(t, items, 1)
	assert.Equal(t, "Asha", items[0].CustomerName)
	assert.Equal(t, "Plata Mensual", items[0].SchemeName)
	assert.Equal(t, entity.AssetSilver, items[0].AssetType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precios de mercado
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: oro el día D y plata el día D+1 producen dos entradas de
// historial, cada una con un solo metal poblado.
func TestPreciosDeMercado_HistorialPorDia(t *testing.T) {
	history := []entity.MarketRate{
		{ID: "r2", AssetType: entity.AssetSilver, PricePerGram: dec("80.5"), RateDate: fecha(t, "2024-05-02"), Source: "manual"},
		{ID: "r1", AssetType: entity.AssetGold, PricePerGram: dec("6200"), RateDate: fecha(t, "2024-05-01"), Source: "manual"},
	}

	out := reports.AggregateMarketRates(nil, history)
	require.Len(t, out.History, 2)

	// Descendente: primero D+1 (solo plata), luego D (solo oro).
	assert.Equal(t, "2024-05-02", out.History[0].RateDate)
	assert.Nil(t, out.History[0].GoldRate)
	require.NotNil(t, out.History[0].SilverRate)
	assert.Equal(t, "80.5", out.History[0].SilverRate.String())

	assert.Equal(t, "2024-05-01", out.History[1].RateDate)
	require.NotNil(t, out.History[1].GoldRate)
	assert.Nil(t, out.History[1].SilverRate)
}

func TestPreciosDeMercado_VigenteCombinaMetales(t *testing.T) {
	current := []entity.MarketRate{
		{ID: "g", AssetType: entity.AssetGold, PricePerGram: dec("6200"), RateDate: fecha(t, "2024-05-02"), Source: "api"},
		{ID: "s", AssetType: entity.AssetSilver, PricePerGram: dec("80"), RateDate: fecha(t, "2024-04-20"), Source: "manual"},
	}

	out := reports.AggregateMarketRates(current, nil)
	require.NotNil(t, out.Current)
	require.NotNil(t, out.Current.GoldRate)
	require.NotNil(t, out.Current.SilverRate)
	assert.Equal(t, "2024-05-02", out.Current.RateDate, "la fecha combinada es la del metal más reciente")
	assert.Equal(t, "api", out.Current.Source)
}

func TestPreciosDeMercado_SinFilasNoHayVigente(t *testing.T) {
	out := reports.AggregateMarketRates(nil, nil)
	assert.Nil(t, out.Current)
	assert.Empty(t, out.History)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte diario
// ──────────────────────────────────────────────────────────────────────────────

func TestReporteDiario_TotalesYDesgloses(t *testing.T) {
	in := reports.DailyReportInput{
		Date: fecha(t, "2024-05-10"),
		Payments: []entity.Payment{
			pago("p1", "c1", "s1", "500", entity.MethodCash, "2024-05-10"),
			pago("p2", "c2", "s1", "300", entity.MethodUPI, "2024-05-10"),
			pago("p3", "c1", "", "200", entity.MethodCash, "2024-05-10"),
		},
		Customers: []entity.Customer{{ID: "c1", Name: "Asha"}, {ID: "c2", Name: "Binu"}},
		Staff:     []entity.StaffProfile{{ID: "s1", Name: "Ravi"}},
		Metadata:  []entity.StaffMetadata{{StaffID: "s1", StaffCode: "ST-01"}},
	}

	out := reports.AggregateDailyReport(in)
	assert.Equal(t, "2024-05-10", out.Date)
	assert.Equal(t, 3, out.TotalPayments)
	assert.Equal(t, "1000", out.TotalAmount.String())
	assert.Equal(t, 2, out.UniqueCustomers)
	assert.Equal(t, 1, out.ActiveStaff, "solo cobradores con pagos atribuidos")
	assert.Equal(t, "333.33", out.AveragePayment.String())

	require.Len(t, out.ByStaff, 1)
	assert.Equal(t, "Ravi", out.ByStaff[0].StaffName)
	assert.Equal(t, "ST-01", out.ByStaff[0].StaffCode)
	assert.Equal(t, 2, out.ByStaff[0].PaymentCount)
	assert.Equal(t, "800", out.ByStaff[0].TotalCollected.String())

	require.Len(t, out.Payments, 3)
	assert.Equal(t, "Unknown", out.Payments[2].StaffName, "pago sin cobrador lista Unknown")
}

func TestReporteDiario_SinPagos(t *testing.T) {
	out := reports.AggregateDailyReport(reports.DailyReportInput{Date: fecha(t, "2024-05-10")})
	assert.Equal(t, 0, out.TotalPayments)
	assert.Equal(t, "0", out.TotalAmount.String())
	assert.Equal(t, "0", out.AveragePayment.String())
	assert.Empty(t, out.ByMethod)
	assert.Empty(t, out.ByStaff)
	assert.Empty(t, out.Payments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos por cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestPagosPorCliente_AgrupaPorParClienteInscripcion(t *testing.T) {
	p1 := pago("p1", "c1", "s1", "100", entity.MethodCash, "2024-05-03")
	p2 := pago("p2", "c1", "s1", "150", entity.MethodCash, "2024-05-09")
	p1.UserSchemeID, p2.UserSchemeID = "us1", "us1"

	customers := []entity.Customer{{ID: "c1", Name: "Asha", Phone: "111"}}
	enrollments := []entity.UserScheme{{ID: "us1", CustomerID: "c1", SchemeID: "sch1", AccumulatedMetalGrams: dec("4.2")}}
	schemes := []entity.Scheme{{ID: "sch1", Name: "Oro Diario"}}

	rows := reports.AggregateCustomerPayments([]entity.Payment{p1, p2}, customers, enrollments, schemes)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Asha", row.CustomerName)
	assert.Equal(t, "Oro Diario", row.SchemeName)
	assert.Equal(t, 2, row.TotalPayments)
	assert.Equal(t, "250", row.TotalPaid.String())
	assert.Equal(t, "4.2", row.MetalGrams.String(), "foto vigente, no suma")
	assert.Equal(t, "2024-05-09", row.LastPaymentDate, "máximo lexicográfico de fechas ISO")
	assert.Equal(t, "0", row.DueAmount.String(), "campo reservado")
}

func TestPagosPorCliente_PerfilAusenteUsaDefaults(t *testing.T) {
	p := pago("p1", "c-huérfano", "s1", "100", entity.MethodCash, "2024-05-03")

	rows := reports.AggregateCustomerPayments([]entity.Payment{p}, nil, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Unknown", rows[0].CustomerName)
	assert.Equal(t, "N/A", rows[0].Phone)
	assert.Equal(t, "Unknown", rows[0].SchemeName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desempeño por plan
// ──────────────────────────────────────────────────────────────────────────────

func TestDesempenoPorPlan_IndireccionPorInscripcion(t *testing.T) {
	schemes := []entity.Scheme{
		{ID: "sch1", Name: "Oro Diario", AssetType: entity.AssetGold},
		{ID: "sch2", Name: "Plata Mensual", AssetType: entity.AssetSilver},
	}
	enrollments := []entity.UserScheme{
		{ID: "us1", CustomerID: "c1", SchemeID: "sch1", Status: entity.EnrollmentActive, AccumulatedMetalGrams: dec("3")},
		{ID: "us2", CustomerID: "c2", SchemeID: "sch1", Status: entity.EnrollmentCompleted, AccumulatedMetalGrams: dec("5")},
	}
	p1 := pago("p1", "c1", "s1", "400", entity.MethodCash, "2024-05-01")
	p2 := pago("p2", "c2", "s1", "600", entity.MethodUPI, "2024-05-02")
	p1.UserSchemeID, p2.UserSchemeID = "us1", "us2"

	rows := reports.AggregateSchemePerformance(schemes, enrollments, []entity.Payment{p1, p2})
	require.Len(t, rows, 2)

	oro := rows[0]
	assert.Equal(t, "Oro Diario", oro.SchemeName)
	assert.Equal(t, 2, oro.TotalEnrollments)
	assert.Equal(t, 1, oro.ActiveEnrollments)
	assert.Equal(t, 1, oro.CompletedEnrollments)
	assert.Equal(t, "1000", oro.TotalCollected.String())
	assert.Equal(t, "8", oro.TotalMetalGrams.String())
	assert.Equal(t, "500", oro.AvgPerEnrollment.String())

	plata := rows[1]
	assert.Equal(t, 0, plata.TotalEnrollments)
	assert.Equal(t, "0", plata.AvgPerEnrollment.String(), "sin inscripciones el promedio es 0, no divide por cero")
}

func TestRosterPlanes_RecaudoPorPlan(t *testing.T) {
	schemes := []entity.Scheme{{ID: "sch1", Name: "Oro Diario", AssetType: entity.AssetGold, Active: true}}
	enrollments := []entity.UserScheme{
		{ID: "us1", SchemeID: "sch1", Status: entity.EnrollmentActive},
	}
	p := pago("p1", "c1", "s1", "400", entity.MethodCash, "2024-05-01")
	p.UserSchemeID = "us1"

	items := reports.AggregateSchemeRoster(schemes, enrollments, []entity.Payment{p})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ActiveEnrollments)
	assert.Equal(t, 0, items[0].CompletedEnrollments)
	assert.Equal(t, "400", items[0].TotalCollected.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Control de acceso
// ──────────────────────────────────────────────────────────────────────────────

func TestControlDeAcceso_UneListaBlancaConPerfiles(t *testing.T) {
	entries := []entity.WhitelistEntry{
		{Phone: "111", Active: true, AddedBy: "admin"},
		{Phone: "222", Active: false},
	}
	profiles := []entity.Profile{{ID: "u1", Name: "Asha", Phone: "111", Role: "staff"}}

	rows := reports.AggregateAccessControl(entries, profiles)
	require.Len(t, rows, 2)

	assert.Equal(t, "Asha", rows[0].Name)
	assert.Equal(t, "staff", rows[0].Role)
	assert.True(t, rows[0].IsActive)

	assert.Equal(t, "N/A", rows[1].Name, "teléfono sin perfil aún no registrado")
	assert.Equal(t, "customer", rows[1].Role)
}
