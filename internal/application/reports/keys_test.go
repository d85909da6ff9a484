package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDependentKinds_PorColeccion(t *testing.T) {
	assert.Equal(t, []Kind{KindMarketRates}, DependentKinds(CollectionMarketRates))
	assert.Equal(t, []Kind{KindAccessControl}, DependentKinds(CollectionWhitelist))

	assert.Contains(t, DependentKinds(CollectionPayments), KindDashboardMetrics)
	assert.Contains(t, DependentKinds(CollectionPayments), KindCashFlowSeries)
	assert.NotContains(t, DependentKinds(CollectionPayments), KindOutflowSeries,
		"las salidas solo dependen de retiros, no de pagos")

	assert.Contains(t, DependentKinds(CollectionWithdrawals), KindOutflowSeries)
	assert.NotContains(t, DependentKinds(CollectionWithdrawals), KindCollectionTrend)

	assert.Empty(t, DependentKinds("coleccion_desconocida"))
}

func TestDependentKinds_ComodinDevuelveTodos(t *testing.T) {
	kinds := DependentKinds("*")
	assert.Len(t, kinds, 16)
	assert.Contains(t, kinds, KindDashboardMetrics)
	assert.Contains(t, kinds, KindAccessControl)
}

func TestKindKey(t *testing.T) {
	assert.Equal(t, "dashboard_metrics", KindDashboardMetrics.Key())
	assert.Equal(t, "staff_detail|s1", KindStaffDetail.Key("s1"))
	assert.Equal(t, "customer_payments|2024-05-01|2024-05-31",
		KindCustomerPayments.Key("2024-05-01", "2024-05-31"))
}

func TestRangeDays_InclusivoYMinimoUno(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse("2006-01-02", s)
		return v
	}

	assert.Equal(t, 5, rangeDays(d("2024-05-01"), d("2024-05-05")), "ambos extremos cuentan")
	assert.Equal(t, 1, rangeDays(d("2024-05-01"), d("2024-05-01")))
	assert.Equal(t, 1, rangeDays(d("2024-05-05"), d("2024-05-01")), "rango invertido no baja de 1")

	// La hora no cuenta: solo la porción de fecha.
	assert.Equal(t, 2, rangeDays(d("2024-05-01").Add(23*time.Hour), d("2024-05-02")))
}

func TestSameDay_IgnoraLaHora(t *testing.T) {
	a := time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)
	b := time.Date(2024, 5, 10, 23, 45, 0, 0, time.UTC)
	assert.True(t, sameDay(a, b))
	assert.False(t, sameDay(a, b.Add(time.Hour)))
}
