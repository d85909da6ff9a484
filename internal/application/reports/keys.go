// Package reports contiene el núcleo de agregación del panel administrativo:
// funciones puras que transforman registros crudos en reportes derivados, el
// catálogo de tipos de reporte con sus dependencias de datos y el servicio que
// orquesta gateway → agregador → caché.
package reports

import "github.com/tu-usuario/oroplan-admin/internal/cache"

// Kind identifica una familia de reportes. La clave de caché es el Kind más
// sus parámetros (fecha, rango, id).
type Kind string

const (
	KindDashboardMetrics   Kind = "dashboard_metrics"
	KindCollectionTrend    Kind = "collection_trend"
	KindMethodDistribution Kind = "method_distribution"
	KindStaffRoster        Kind = "staff_roster"
	KindStaffDetail        Kind = "staff_detail"
	KindSchemeRoster       Kind = "scheme_roster"
	KindMarketRates        Kind = "market_rates"
	KindWithdrawalRoster   Kind = "withdrawal_roster"
	KindInflowSeries       Kind = "inflow_series"
	KindOutflowSeries      Kind = "outflow_series"
	KindCashFlowSeries     Kind = "cashflow_series"
	KindDailyReport        Kind = "daily_report"
	KindStaffPerformance   Kind = "staff_performance"
	KindCustomerPayments   Kind = "customer_payments"
	KindSchemePerformance  Kind = "scheme_performance"
	KindAccessControl      Kind = "access_control"
)

// Colecciones del Record Store que los triggers de la DB anuncian por NOTIFY.
const (
	CollectionProfiles     = "profiles"
	CollectionStaffDetails = "staff_details"
	CollectionAssignments  = "staff_assignments"
	CollectionSchemes      = "schemes"
	CollectionUserSchemes  = "user_schemes"
	CollectionPayments     = "payments"
	CollectionWithdrawals  = "withdrawals"
	CollectionMarketRates  = "market_rates"
	CollectionWhitelist    = "whitelist"
)

// kindsByCollection declara, por colección, qué tipos de reporte la leen.
// Es la tabla que consulta el invalidador cuando llega un evento de cambio.
var kindsByCollection = map[string][]Kind{
	CollectionProfiles: {
		KindDashboardMetrics, KindStaffRoster, KindStaffDetail,
		KindWithdrawalRoster, KindDailyReport, KindStaffPerformance,
		KindCustomerPayments, KindAccessControl,
	},
	CollectionStaffDetails: {
		KindStaffRoster, KindStaffDetail, KindStaffPerformance, KindDailyReport,
	},
	CollectionAssignments: {
		KindStaffRoster, KindStaffDetail, KindStaffPerformance,
	},
	CollectionSchemes: {
		KindSchemeRoster, KindSchemePerformance, KindWithdrawalRoster,
		KindStaffDetail, KindCustomerPayments,
	},
	CollectionUserSchemes: {
		KindDashboardMetrics, KindSchemeRoster, KindSchemePerformance,
		KindWithdrawalRoster, KindStaffDetail, KindCustomerPayments,
	},
	CollectionPayments: {
		KindDashboardMetrics, KindCollectionTrend, KindMethodDistribution,
		KindStaffRoster, KindStaffDetail, KindSchemeRoster,
		KindInflowSeries, KindCashFlowSeries, KindDailyReport,
		KindStaffPerformance, KindCustomerPayments, KindSchemePerformance,
	},
	CollectionWithdrawals: {
		KindDashboardMetrics, KindWithdrawalRoster,
		KindOutflowSeries, KindCashFlowSeries,
	},
	CollectionMarketRates: {
		KindMarketRates,
	},
	CollectionWhitelist: {
		KindAccessControl,
	},
}

// allKinds la lista completa, para el aviso comodín "*" tras una reconexión
// del listener (pudieron perderse eventos).
var allKinds = []Kind{
	KindDashboardMetrics, KindCollectionTrend, KindMethodDistribution,
	KindStaffRoster, KindStaffDetail, KindSchemeRoster, KindMarketRates,
	KindWithdrawalRoster, KindInflowSeries, KindOutflowSeries,
	KindCashFlowSeries, KindDailyReport, KindStaffPerformance,
	KindCustomerPayments, KindSchemePerformance, KindAccessControl,
}

// DependentKinds devuelve los tipos de reporte que leen la colección dada.
// El comodín "*" devuelve todos.
func DependentKinds(collection string) []Kind {
	if collection == "*" {
		return allKinds
	}
	return kindsByCollection[collection]
}

// Key construye la clave de caché de un reporte parametrizado.
func (k Kind) Key(params ...string) string {
	return cache.Key(string(k), params...)
}
