package reports

import (
	"time"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/cache"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
	"github.com/tu-usuario/oroplan-admin/internal/notifier"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
)

// trendWindowDays ventana de la serie de recaudo y del historial de precios.
const trendWindowDays = 30

// recentPaymentsLimit pagos recientes en la vista de detalle de un cobrador.
const recentPaymentsLimit = 10

// Gateways repositorios de solo lectura del Record Store que consume el
// servicio de reportes.
type Gateways struct {
	Customers   repository.CustomerRepository
	Staff       repository.StaffRepository
	Schemes     repository.SchemeRepository
	Payments    repository.PaymentRepository
	Withdrawals repository.WithdrawalRepository
	Rates       repository.MarketRateRepository
	Whitelist   repository.WhitelistRepository
}

// TTLs intervalos de refresco por tipo de reporte. Los tipos sin intervalo
// solo se recomputan por invalidación.
type TTLs struct {
	Dashboard   time.Duration
	MarketRates time.Duration
}

// PDFGenerator genera la versión imprimible del reporte diario.
type PDFGenerator interface {
	DailyReport(report dto.DailyReportDTO) ([]byte, error)
}

// Service punto de entrada de los reportes: una operación por tipo, cada una
// con parámetros explícitos (fecha, rango, id; nunca un "ahora" implícito).
// Orquesta gateway → agregador → caché; los sub-fetches independientes de un
// reporte corren en paralelo y el reporte entero falla si cualquiera falla.
type Service struct {
	gw    Gateways
	cache *cache.ReportCache
	ttl   TTLs
	pdf   PDFGenerator
	log   *logger.Logger
}

// NewService construye el servicio. La caché y el notifier se inyectan:
// no hay estado global.
func NewService(gw Gateways, c *cache.ReportCache, ttl TTLs, pdf PDFGenerator, log *logger.Logger) *Service {
	return &Service{gw: gw, cache: c, ttl: ttl, pdf: pdf, log: log}
}

// ttlFor intervalo de refresco de un tipo; 0 significa solo invalidación.
func (s *Service) ttlFor(kind Kind) time.Duration {
	switch kind {
	case KindDashboardMetrics:
		return s.ttl.Dashboard
	case KindMarketRates:
		return s.ttl.MarketRates
	default:
		return 0
	}
}

// BindInvalidation suscribe el servicio a los eventos de cambio: cada
// colección invalida los tipos de reporte que la leen. El comodín "*"
// (reconexión del listener, pudieron perderse eventos) invalida todo.
func (s *Service) BindInvalidation(n *notifier.Notifier) {
	handler := func(collection string) {
		kinds := DependentKinds(collection)
		if len(kinds) == 0 {
			return
		}
		s.log.Debug().Str("collection", collection).Int("kinds", len(kinds)).Msg("invalidando reportes")
		for _, k := range kinds {
			s.cache.Invalidate(string(k))
		}
	}
	for collection := range kindsByCollection {
		n.Subscribe(collection, handler)
	}
	n.Subscribe("*", handler)
}
