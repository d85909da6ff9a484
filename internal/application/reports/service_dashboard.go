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

// DashboardMetrics KPIs del panel respecto a la fecha de referencia.
func (s *Service) DashboardMetrics(ctx context.Context, today time.Time) (dto.DashboardMetricsDTO, error) {
	key := KindDashboardMetrics.Key(DayString(today))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindDashboardMetrics), func(ctx context.Context) (dto.DashboardMetricsDTO, error) {
		var (
			totalCustomers    int
			activeEnrollments int
			payments          []entity.Payment
			withdrawals       []entity.Withdrawal
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			totalCustomers, err = s.gw.Customers.CountActive(gctx)
			return err
		})
		g.Go(func() (err error) {
			activeEnrollments, err = s.gw.Schemes.CountActiveEnrollments(gctx)
			return err
		})
		g.Go(func() (err error) {
			payments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{})
			return err
		})
		g.Go(func() (err error) {
			withdrawals, err = s.gw.Withdrawals.ListProcessedBetween(gctx, time.Time{}, time.Time{})
			return err
		})
		if err := g.Wait(); err != nil {
			return dto.DashboardMetricsDTO{}, fmt.Errorf("dashboard metrics: %w", err)
		}
		return AggregateDashboardMetrics(today, totalCustomers, activeEnrollments, payments, withdrawals), nil
	})
}

// CollectionTrend serie de recaudo de los 30 días previos a la fecha de
// referencia, inclusive.
func (s *Service) CollectionTrend(ctx context.Context, today time.Time) ([]dto.TrendPointDTO, error) {
	key := KindCollectionTrend.Key(DayString(today))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindCollectionTrend), func(ctx context.Context) ([]dto.TrendPointDTO, error) {
		from := startOfDay(today).AddDate(0, 0, -(trendWindowDays - 1))
		payments, err := s.gw.Payments.ListCompleted(ctx, repository.PaymentFilter{From: from, To: today})
		if err != nil {
			return nil, fmt.Errorf("collection trend: %w", err)
		}
		return AggregateCollectionTrend(payments), nil
	})
}

// MethodDistribution distribución histórica de pagos completados por método.
func (s *Service) MethodDistribution(ctx context.Context) ([]dto.MethodGroupDTO, error) {
	key := KindMethodDistribution.Key()
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindMethodDistribution), func(ctx context.Context) ([]dto.MethodGroupDTO, error) {
		payments, err := s.gw.Payments.ListCompleted(ctx, repository.PaymentFilter{})
		if err != nil {
			return nil, fmt.Errorf("method distribution: %w", err)
		}
		return AggregateMethodDistribution(payments), nil
	})
}
