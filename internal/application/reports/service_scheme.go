package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/cache"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

// fetchSchemeRecords trae en paralelo planes, inscripciones y pagos
// completados, los insumos comunes de los reportes por plan.
func (s *Service) fetchSchemeRecords(ctx context.Context) ([]entity.Scheme, []entity.UserScheme, []entity.Payment, error) {
	var (
		schemes     []entity.Scheme
		enrollments []entity.UserScheme
		payments    []entity.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		schemes, err = s.gw.Schemes.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		enrollments, err = s.gw.Schemes.ListEnrollments(gctx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return schemes, enrollments, payments, nil
}

// SchemeRoster listado de planes con estadísticas de inscripción y recaudo.
func (s *Service) SchemeRoster(ctx context.Context) ([]dto.SchemeRosterItemDTO, error) {
	key := KindSchemeRoster.Key()
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindSchemeRoster), func(ctx context.Context) ([]dto.SchemeRosterItemDTO, error) {
		schemes, enrollments, payments, err := s.fetchSchemeRecords(ctx)
		if err != nil {
			return nil, fmt.Errorf("scheme roster: %w", err)
		}
		return AggregateSchemeRoster(schemes, enrollments, payments), nil
	})
}

// SchemePerformance reporte de desempeño por plan.
func (s *Service) SchemePerformance(ctx context.Context) ([]dto.SchemePerformanceDTO, error) {
	key := KindSchemePerformance.Key()
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindSchemePerformance), func(ctx context.Context) ([]dto.SchemePerformanceDTO, error) {
		schemes, enrollments, payments, err := s.fetchSchemeRecords(ctx)
		if err != nil {
			return nil, fmt.Errorf("scheme performance: %w", err)
		}
		return AggregateSchemePerformance(schemes, enrollments, payments), nil
	})
}

// MarketRates precio vigente por metal e historial de 30 días respecto a la
// fecha de referencia.
func (s *Service) MarketRates(ctx context.Context, today time.Time) (dto.MarketRatesDTO, error) {
	key := KindMarketRates.Key(DayString(today))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindMarketRates), func(ctx context.Context) (dto.MarketRatesDTO, error) {
		var current, history []entity.MarketRate
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			current, err = s.gw.Rates.ListCurrent(gctx)
			return err
		})
		g.Go(func() (err error) {
			since := startOfDay(today).AddDate(0, 0, -(trendWindowDays - 1))
			history, err = s.gw.Rates.ListSince(gctx, since)
			return err
		})
		if err := g.Wait(); err != nil {
			return dto.MarketRatesDTO{}, fmt.Errorf("market rates: %w", err)
		}
		return AggregateMarketRates(current, history), nil
	})
}

// WithdrawalRoster listado completo de retiros con cliente y plan resueltos.
func (s *Service) WithdrawalRoster(ctx context.Context) ([]dto.WithdrawalRosterItemDTO, error) {
	key := KindWithdrawalRoster.Key()
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindWithdrawalRoster), func(ctx context.Context) ([]dto.WithdrawalRosterItemDTO, error) {
		withdrawals, err := s.gw.Withdrawals.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("withdrawal roster: %w", err)
		}

		customerIDs := distinct(withdrawals, func(w entity.Withdrawal) string { return w.CustomerID })
		enrollmentIDs := distinct(withdrawals, func(w entity.Withdrawal) string { return w.UserSchemeID })
		var (
			customers   []entity.Customer
			enrollments []entity.UserScheme
			schemes     []entity.Scheme
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			customers, err = s.gw.Customers.ListByIDs(gctx, customerIDs)
			return err
		})
		g.Go(func() (err error) {
			enrollments, err = s.gw.Schemes.ListEnrollmentsByIDs(gctx, enrollmentIDs)
			return err
		})
		g.Go(func() (err error) {
			schemes, err = s.gw.Schemes.List(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("withdrawal roster: %w", err)
		}
		return AggregateWithdrawalRoster(withdrawals, customers, enrollments, schemes), nil
	})
}
